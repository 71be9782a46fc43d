package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"auction-market/internal/models"
	"auction-market/services/market/helpers"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func createAuction(t *testing.T, env *testEnv, title string, hours float64) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions", helpers.CreateAuctionRequest{
		Title:         title,
		DurationHours: hours,
		ImageURL:      "https://picsum.photos/seed/" + title + "/800/800",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp["data"].(map[string]any)["address"].(string)
}

// Full lifecycle: create, bid, reveal, finalize
func TestAuctionLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	addr := createAuction(t, env, "Neon Samurai #01", 1)
	base := "/auctions/" + addr

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auctions := resp["data"].(map[string]any)["auctions"].([]any)
	require.Len(t, auctions, 1)
	first := auctions[0].(map[string]any)
	require.Equal(t, "Bidding", first["phase"])
	require.Equal(t, "Neon Samurai #01", first["title"])

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/bids", helpers.PlaceBidRequest{Amount: "1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env.chain.Advance(time.Minute)
	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/bids", helpers.PlaceBidRequest{Amount: "0.5"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, base+"/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 2)
	newest := bids[0].(map[string]any)
	require.Equal(t, "0x0007a120", newest["encoded_amount"])
	require.Equal(t, helpers.EncryptedAmountLabel, newest["amount"])

	// too early to reveal or finalize
	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/reveal", helpers.RevealBidRequest{Amount: "1"})
	require.Equal(t, http.StatusConflict, w.Code)
	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/finalize", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	env.chain.Advance(time.Hour)

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Reveal", resp["data"].(map[string]any)["phase"])

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/bids", helpers.PlaceBidRequest{Amount: "2"})
	require.Equal(t, http.StatusConflict, w.Code)

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/reveal", helpers.RevealBidRequest{Amount: "1", Finalize: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, resp["data"], 2)

	resp, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "Closed", data["phase"])
	require.Equal(t, true, data["ended"])
	require.Equal(t, signer.Hex(), data["winner"])
	require.Equal(t, "1", data["leader"].(map[string]any)["amount"])

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPost, base+"/finalize", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAuction_Validation(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{name: "Valid", request: helpers.CreateAuctionRequest{Title: "Synth Wave #12", DurationHours: 0.5}, wantStatus: http.StatusCreated},
		{name: "Missing_Title", request: helpers.CreateAuctionRequest{DurationHours: 1}, wantStatus: http.StatusBadRequest},
		{name: "Blank_Title", request: helpers.CreateAuctionRequest{Title: "   ", DurationHours: 1}, wantStatus: http.StatusBadRequest},
		{name: "Zero_Duration", request: helpers.CreateAuctionRequest{Title: "x"}, wantStatus: http.StatusBadRequest},
		{name: "Invalid_JSON", request: "{title: 'missing quotes'}", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := SetupTestEnv(t)
			_, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions", tt.request)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestPlaceBid_InvalidAmounts(t *testing.T) {
	env := SetupTestEnv(t)
	addr := createAuction(t, env, "item", 1)

	for _, amount := range []string{"0", "-1", "abc", "5000"} {
		resp, w := ExecuteRequestAndParse(t, env.router, http.MethodPost, "/auctions/"+addr+"/bids", helpers.PlaceBidRequest{Amount: amount})
		require.Equal(t, http.StatusBadRequest, w.Code, amount)
		require.Equal(t, "invalid bid amount", resp["message"])
	}
}

func TestUnknownAuction(t *testing.T) {
	env := SetupTestEnv(t)
	unknown := common.HexToAddress("0x00000000000000000000000000000000deadbeef").Hex()

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+unknown, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/not-an-address", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// An RPC outage after a successful read serves the cached list
func TestListAuctions_CacheFallback(t *testing.T) {
	env := SetupTestEnv(t)
	createAuction(t, env, "cached", 2)

	_, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env.chain.SetFailing(true)
	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "auctions served from cache", resp["message"])
	data := resp["data"].(map[string]any)
	require.Equal(t, true, data["stale"])
	require.Len(t, data["auctions"], 1)

	env.chain.SetFailing(false)
	resp, _ = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, false, resp["data"].(map[string]any)["stale"])
}

func TestListAuctions_OutageWithoutCache(t *testing.T) {
	env := SetupTestEnv(t)
	env.chain.SetFailing(true)

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, resp["error"], "503 Service Unavailable")
}

func TestMetadata(t *testing.T) {
	env := SetupTestEnv(t)
	addr := createAuction(t, env, "Pixel Fox", 1)
	path := "/auctions/" + addr + "/metadata"

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Pixel Fox", resp["data"].(map[string]any)["title"])
	env.service.Wait()

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodPut, path, helpers.MetadataRequest{Title: "Pixel Fox (1/1)", Description: "hand drawn"})
	require.Equal(t, http.StatusOK, w.Code)

	// the list picks up the new title
	resp, _ = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions", nil)
	first := resp["data"].(map[string]any)["auctions"].([]any)[0].(map[string]any)
	require.Equal(t, "Pixel Fox (1/1)", first["title"])
	require.Equal(t, "hand drawn", first["description"])

	// and the registry mirror eventually sees it
	env.service.Wait()
	env.chain.mu.Lock()
	mirrored := env.chain.registry[common.HexToAddress(addr)]
	env.chain.mu.Unlock()
	require.Equal(t, "Pixel Fox (1/1)", mirrored.Title)
}

func TestMetadata_RegistryBackfill(t *testing.T) {
	env := SetupTestEnv(t)
	addr := common.HexToAddress("0x000000000000000000000000000000000000abcd")

	env.chain.mu.Lock()
	env.chain.registry[addr] = models.Metadata{Title: "from another node"}
	env.chain.mu.Unlock()

	resp, w := ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/"+addr.Hex()+"/metadata", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "from another node", resp["data"].(map[string]any)["title"])

	_, w = ExecuteRequestAndParse(t, env.router, http.MethodGet, "/auctions/0x000000000000000000000000000000000000dcba/metadata", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
