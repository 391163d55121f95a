package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/blocknative/zmsg/rpc"
	"github.com/blocknative/zmsg/structs"
	"github.com/lthibault/log"
	"github.com/stretchr/testify/require"
)

type reply struct {
	status int
	body   string
}

type fakeNode struct {
	*httptest.Server

	mu       sync.Mutex
	requests []rpc.Request
	headers  []http.Header
	reply    func(rpc.Request) reply
}

func newFakeNode(t *testing.T, fn func(rpc.Request) reply) *fakeNode {
	t.Helper()

	node := &fakeNode{reply: fn}
	node.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		var req rpc.Request
		_ = json.Unmarshal(body, &req)

		node.mu.Lock()
		node.requests = append(node.requests, req)
		node.headers = append(node.headers, r.Header.Clone())
		rep := node.reply(req)
		node.mu.Unlock()

		if rep.status == 0 {
			rep.status = http.StatusOK
		}
		w.WriteHeader(rep.status)
		io.WriteString(w, rep.body)
	}))
	t.Cleanup(node.Close)
	return node
}

func (fn *fakeNode) setReply(f func(rpc.Request) reply) {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	fn.reply = f
}

func (fn *fakeNode) Requests() []rpc.Request {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return append([]rpc.Request(nil), fn.requests...)
}

func (fn *fakeNode) Headers() []http.Header {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return append([]http.Header(nil), fn.headers...)
}

func (fn *fakeNode) client(t *testing.T) *rpc.Client {
	t.Helper()

	ep, err := rpc.ParseEndpoint(fmt.Sprintf("http://user:secret@%s", fn.Listener.Addr().String()))
	require.NoError(t, err)

	c, err := rpc.NewClient(ep, rpc.WithLogger(log.New(log.WithWriter(io.Discard))))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func result(req rpc.Request, v string) reply {
	return reply{body: fmt.Sprintf(`{"result":%s,"error":null,"id":%d}`, v, req.ID)}
}

func rpcError(req rpc.Request, code int64, msg string) reply {
	return reply{
		status: http.StatusInternalServerError,
		body:   fmt.Sprintf(`{"result":null,"error":{"code":%d,"message":%q},"id":%d}`, code, msg, req.ID),
	}
}

func TestClient_CallWireFormat(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return result(req, `"ok"`)
	})
	c := node.client(t)

	raw, err := c.Call(context.Background(), "z_getoperationstatus", []string{"opid-1"})
	require.NoError(t, err)
	require.JSONEq(t, `"ok"`, string(raw))

	reqs := node.Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]
	require.Equal(t, "1.1", req.Version)
	require.Equal(t, "z_getoperationstatus", req.Method)
	require.Equal(t, uint64(1), req.ID)
	require.Len(t, req.Params, 1)

	h := node.Headers()[0]
	require.Equal(t, "application/json", h.Get("Content-Type"))
	require.Equal(t, rpc.DefaultUserAgent, h.Get("User-Agent"))
	user, pass, ok := (&http.Request{Header: h}).BasicAuth()
	require.True(t, ok)
	require.Equal(t, "user", user)
	require.Equal(t, "secret", pass)
}

func TestClient_EmptyParamsIsArray(t *testing.T) {
	t.Parallel()

	bodyC := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodyC <- string(b)
		io.WriteString(w, `{"result":[],"error":null,"id":1}`)
	}))
	defer srv.Close()

	ep, err := rpc.ParseEndpoint("http://:pw@" + srv.Listener.Addr().String())
	require.NoError(t, err)
	c, err := rpc.NewClient(ep)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Call(context.Background(), "z_listaddresses")
	require.NoError(t, err)
	require.JSONEq(t, `{"version":"1.1","method":"z_listaddresses","params":[],"id":1}`, <-bodyC)
}

func TestClient_IDsIncrease(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return result(req, `true`)
	})
	c := node.client(t)

	const n = 10
	for i := 0; i < n; i++ {
		_, err := c.Call(context.Background(), "getinfo")
		require.NoError(t, err)
	}

	// the id counter is not reset by failed calls either
	node.setReply(func(req rpc.Request) reply { return rpcError(req, -8, "bad") })
	_, err := c.Call(context.Background(), "getinfo")
	require.Error(t, err)

	reqs := node.Requests()
	require.Len(t, reqs, n+1)
	for i, req := range reqs {
		require.Equal(t, uint64(i+1), req.ID)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int64
		kind rpc.Kind
	}{
		{name: "safe mode", code: -2, kind: rpc.KindForbiddenBySafeMode},
		{name: "invalid address", code: -5, kind: rpc.KindInvalidAddressOrKey},
		{name: "invalid parameter", code: -8, kind: rpc.KindInvalidParameter},
		{name: "verify", code: -25, kind: rpc.KindVerifyError},
		{name: "rejected", code: -26, kind: rpc.KindVerifyRejected},
		{name: "in chain", code: -27, kind: rpc.KindVerifyAlreadyInChain},
		{name: "warmup", code: -28, kind: rpc.KindInWarmup},
		{name: "unknown", code: -999, kind: rpc.KindUnclassified},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := newFakeNode(t, func(req rpc.Request) reply {
				return rpcError(req, tt.code, "node says no")
			})
			c := node.client(t)

			_, err := c.Call(context.Background(), "gettransaction", "txid")
			require.ErrorIs(t, err, tt.kind)

			var rerr *rpc.Error
			require.True(t, errors.As(err, &rerr))
			require.Equal(t, tt.code, rerr.Code)
			require.Equal(t, "node says no", rerr.Message)
			require.NotErrorIs(t, err, rpc.ErrTransport)
		})
	}
}

func TestClient_MissingResult(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return reply{body: `{"error":null,"id":1}`}
	})
	c := node.client(t)

	_, err := c.Call(context.Background(), "z_listaddresses")
	require.ErrorIs(t, err, rpc.KindMissingResult)

	var rerr *rpc.Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, rpc.CodeMissingResult, rerr.Code)
}

func TestClient_NullResultIsAResult(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return result(req, `null`)
	})
	c := node.client(t)

	raw, err := c.Call(context.Background(), "stop")
	require.NoError(t, err)
	require.Equal(t, "null", string(raw))
}

func TestClient_MissingResponse(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return reply{body: ""}
	})
	c := node.client(t)

	_, err := c.Call(context.Background(), "z_listaddresses")
	require.ErrorIs(t, err, rpc.KindMissingResponse)

	var rerr *rpc.Error
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, rpc.CodeMissingResponse, rerr.Code)
}

func TestClient_TransportErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply reply
	}{
		{name: "unauthorized", reply: reply{status: http.StatusUnauthorized}},
		{name: "malformed json", reply: reply{body: `{"result":`}},
		{name: "html", reply: reply{status: http.StatusNotFound, body: `<html>not found</html>`}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := newFakeNode(t, func(rpc.Request) reply { return tt.reply })
			c := node.client(t)

			_, err := c.Call(context.Background(), "z_listaddresses")
			require.ErrorIs(t, err, rpc.ErrTransport)
		})
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	ep, err := rpc.ParseEndpoint("http://u:p@" + addr)
	require.NoError(t, err)
	c, err := rpc.NewClient(ep)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Call(context.Background(), "z_listaddresses")
	require.ErrorIs(t, err, rpc.ErrTransport)
}

func TestClient_CallForKeepsAmountsExact(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return result(req, `[{"txid":"a","amount":0.00012345,"memo":"f6"}]`)
	})
	c := node.client(t)

	var out []struct {
		TxID   string         `json:"txid"`
		Amount structs.Amount `json:"amount"`
	}
	require.NoError(t, c.CallFor(context.Background(), &out, "z_listreceivedbyaddress", "zaddr", 1))
	require.Len(t, out, 1)
	require.True(t, out[0].Amount.Equal(structs.MustAmount("0.00012345")))

	var generic []map[string]any
	require.NoError(t, c.CallFor(context.Background(), &generic, "z_listreceivedbyaddress", "zaddr", 1))
	require.Equal(t, json.Number("0.00012345"), generic[0]["amount"])
}

func TestClient_Closed(t *testing.T) {
	t.Parallel()

	node := newFakeNode(t, func(req rpc.Request) reply {
		return result(req, `1`)
	})
	c := node.client(t)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Call(context.Background(), "getblockcount")
	require.ErrorIs(t, err, rpc.ErrClosed)
	require.Empty(t, node.Requests())
}

func TestClient_Batch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqs []rpc.Request
		if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil || len(reqs) != 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `[{"result":["zs1"],"error":null,"id":%d},{"result":null,"error":{"code":-5,"message":"Invalid or non-wallet transaction id"},"id":%d}]`,
			reqs[0].ID, reqs[1].ID)
	}))
	defer srv.Close()

	ep, err := rpc.ParseEndpoint("http://u:p@" + srv.Listener.Addr().String())
	require.NoError(t, err)
	c, err := rpc.NewClient(ep)
	require.NoError(t, err)
	defer c.Close()

	reqs := []rpc.Request{
		c.NewRequest("z_listaddresses"),
		c.NewRequest("gettransaction", "deadbeef"),
	}
	require.Equal(t, uint64(1), reqs[0].ID)
	require.Equal(t, uint64(2), reqs[1].ID)

	resps, err := c.Batch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	require.NoError(t, resps[0].Err())
	require.JSONEq(t, `["zs1"]`, string(resps[0].Result))
	require.ErrorIs(t, resps[1].Err(), rpc.KindInvalidAddressOrKey)
	require.Equal(t, json.Number("2"), resps[1].ID)
}
