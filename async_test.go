package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// DeferredSuite exercises the deferred strategy end to end against a live
// HTTP server. The server stalls eth_blockNumber so completion order
// differs from issue order.
type DeferredSuite struct {
	suite.Suite
	srv *httptest.Server
}

func TestDeferredSuite(t *testing.T) {
	suite.Run(t, new(DeferredSuite))
}

func (s *DeferredSuite) SetupTest() {
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     uint64 `json:"id"`
		}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))

		if req.Method == "eth_blockNumber" {
			time.Sleep(30 * time.Millisecond)
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":"%s"}`, req.ID, req.Method)
	}))
}

func (s *DeferredSuite) TearDownTest() {
	s.srv.Close()
}

func (s *DeferredSuite) TestGatherPreservesIssueOrder() {
	client, err := Dial(s.srv.URL, WithDeferred())
	s.Require().NoError(err)
	defer client.Close()

	ctx := context.Background()
	slow, err := client.EthBlockNumber(ctx)
	s.Require().NoError(err)
	fast, err := client.EthGasPrice(ctx)
	s.Require().NoError(err)

	responses, err := Gather(ctx, slow, fast)
	s.Require().NoError(err)
	s.Require().Len(responses, 2)
	s.Contains(responses[0].String(), "eth_blockNumber")
	s.Contains(responses[1].String(), "eth_gasPrice")
}

func (s *DeferredSuite) TestDoneSignalsResolution() {
	client, err := Dial(s.srv.URL, WithDeferred())
	s.Require().NoError(err)
	defer client.Close()

	call, err := client.EthGasPrice(context.Background())
	s.Require().NoError(err)

	select {
	case <-call.Done():
	case <-time.After(time.Second):
		s.FailNow("call never resolved")
	}
	resp, err := call.Await(context.Background())
	s.Require().NoError(err)
	s.True(resp.OK())
}

func (s *DeferredSuite) TestBlockingStrategyOverHTTP() {
	client, err := Dial(s.srv.URL)
	s.Require().NoError(err)
	defer client.Close()

	call, err := client.NetVersion(context.Background())
	s.Require().NoError(err)
	resp, err := call.Await(context.Background())
	s.Require().NoError(err)
	s.Contains(resp.String(), "net_version")
}
