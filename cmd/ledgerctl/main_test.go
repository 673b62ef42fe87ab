package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/ed25519"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/api/grpc/handler"
	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/testutil"
)

type fakeServer struct {
	ledger *mocks.LedgerService
	auth   *mocks.AuthService
	tokens *mocks.TokenService
	dial   dialFunc
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	f := &fakeServer{
		ledger: mocks.NewLedgerService(t),
		auth:   mocks.NewAuthService(t),
		tokens: mocks.NewTokenService(t),
	}

	gs := grpc.NewServer()
	ledgerapi.RegisterLedgerServer(gs, handler.NewLedger(f.ledger, mocks.NewEventSubscriber(t), lg))
	ledgerapi.RegisterAuthServer(gs, handler.NewAuth(f.auth, f.tokens, lg))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	f.dial = func(*cli.Context) (*grpc.ClientConn, error) {
		return grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}
	return f
}

func (f *fakeServer) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := newApp(&out, f.dial).Run(append([]string{"ledgerctl"}, args...))
	return out.String(), err
}

func TestKeygen_WritesLoadableKeyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "id.json")

	var out bytes.Buffer
	require.NoError(t, newApp(&out, dialServer).Run([]string{"ledgerctl", "keygen", "--out", path}))

	var printed map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))

	address, priv, err := readKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, printed["address"], address.String())
	assert.NoError(t, account.Verify(address, []byte("msg"), signWith(priv, "msg")))
}

func TestReadKeyFile_AddressMismatch(t *testing.T) {
	t.Parallel()

	other, _, err := account.GenerateKey(rand.Reader)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, writeKeyFile(path, keyFile{
		Address: other.String(),
		Seed:    model.EncodeHex(bytes.Repeat([]byte{7}, 32)),
	}))

	_, _, err = readKeyFile(path)
	assert.ErrorContains(t, err, "does not match")
}

func TestLogin_SignsChallenge(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)

	path := filepath.Join(t.TempDir(), "id.json")
	_, err := f.run(t, "keygen", "--out", path)
	require.NoError(t, err)
	address, _, err := readKeyFile(path)
	require.NoError(t, err)

	nonce := []byte("nonce")
	f.auth.On("BeginLogin", mock.Anything, address).Return(model.LoginChallenge{SessionID: "sess", Nonce: nonce}, nil).Once()
	f.auth.On("CompleteLogin", mock.Anything, "sess", mock.MatchedBy(func(sig []byte) bool {
		return account.Verify(address, account.LoginMessage("sess", nonce), sig) == nil
	})).Return(model.SessionResult{Address: address, AccessToken: "access", RefreshToken: "refresh"}, nil).Once()

	out, err := f.run(t, "login", "--key-file", path)
	require.NoError(t, err)

	var tokens ledgerapi.CompleteLoginResponse
	require.NoError(t, protojson.Unmarshal([]byte(out), &tokens))
	assert.Equal(t, "access", tokens.GetAccessToken())
	assert.Equal(t, "refresh", tokens.GetRefreshToken())
	assert.Equal(t, string(address), tokens.GetAddress())
}

func TestLogout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		method string
	}{
		{name: "single token", args: []string{"logout", "--refresh-token", "rt"}, method: "RevokeByToken"},
		{name: "every token of the owner", args: []string{"logout", "--refresh-token", "rt", "--all"}, method: "RevokeAllByToken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFakeServer(t)
			f.tokens.On(tt.method, mock.Anything, "rt").Return(nil).Once()

			out, err := f.run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, `"status": "ok"`)
		})
	}
}

func TestRequestDeposit_DecodesIndex(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	id := model.Hash{0x0f}
	f.ledger.On("RequestDeposit", mock.Anything, model.Address("alice"), int64(5), []byte{0xab, 0xcd}).Return(id, nil).Once()

	out, err := f.run(t, "--token", "t", "request-deposit", "--user", "alice", "--amount", "5", "--index", "0xabcd")
	require.NoError(t, err)
	assert.Contains(t, out, id.Hex())
}

func TestRequestDeposit_BadHex(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	_, err := f.run(t, "request-deposit", "--user", "alice", "--amount", "5", "--index", "xyz")
	assert.ErrorContains(t, err, "--index")
}

func TestSupplyAndInfo(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	f.ledger.On("EncryptedSupply", mock.Anything).Return(uint256.NewInt(42), nil).Once()
	f.ledger.On("ServerManager", mock.Anything).Return(model.Address("auth"), nil).Once()
	f.ledger.On("TokenContract", mock.Anything).Return("asset", nil).Once()

	out, err := f.run(t, "supply")
	require.NoError(t, err)
	assert.Contains(t, out, `"42"`)

	out, err = f.run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, `"server_manager": "auth"`)
	assert.Contains(t, out, `"token_contract": "asset"`)
}

func TestDeposit_ShowsCompletion(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	id := model.Hash{0x01}
	f.ledger.On("DepositRequest", mock.Anything, id).Return(model.DepositRequest{RequestID: id, User: "alice", Amount: 3, Exists: true}, nil).Once()
	f.ledger.On("DepositCompleted", mock.Anything, id).Return(true, nil).Once()

	out, err := f.run(t, "deposit", id.Hex())
	require.NoError(t, err)
	assert.Contains(t, out, `"completed": true`)
	assert.Contains(t, out, `"user": "alice"`)
}

func TestEvents_List(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	f.ledger.On("ListEvents", mock.Anything, uint64(2), 10).Return([]model.Event{
		{ID: 3, Kind: model.EventTransferRequested, Payload: []byte(`{"transfer_id":"0x01"}`)},
	}, nil).Once()

	out, err := f.run(t, "events", "--after", "2", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 3`)
	assert.Contains(t, out, `"kind": "transfer_requested"`)
	assert.Contains(t, out, `"transfer_id": "0x01"`)
}

func TestPrintJSON_MessagesUseProtoNames(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "message",
			in:   &ledgerapi.RequestDepositResponse{RequestId: "0x01"},
			want: []string{`"request_id": "0x01"`},
		},
		{
			name: "unset fields are emitted",
			in:   &ledgerapi.EncryptedBalance{},
			want: []string{`"exists": false`, `"timestamp": null`},
		},
		{
			name: "timestamp",
			in:   &ledgerapi.EncryptedBalance{Timestamp: timestamppb.New(at), Exists: true},
			want: []string{`"timestamp": "2024-05-01T12:00:00Z"`},
		},
		{
			name: "plain value",
			in:   map[string]string{"status": "ok"},
			want: []string{`"status": "ok"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, printJSON(&out, tt.in))
			require.True(t, json.Valid(out.Bytes()))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestBalance_RequiresArgument(t *testing.T) {
	t.Parallel()

	f := newFakeServer(t)
	_, err := f.run(t, "balance")
	assert.ErrorContains(t, err, "account index")
}

func signWith(priv ed25519.PrivateKey, msg string) []byte {
	return ed25519.Sign(priv, []byte(msg))
}
