// Command ledgerctl is an operator and user client of the cipherledger gRPC API.
package main

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/model"
)

var (
	buildVersion = "N/A" // set by ldflags
)

var (
	serverFlag = &cli.StringFlag{
		Name:    "server",
		Usage:   "gRPC address of the ledger server",
		Value:   "localhost:50051",
		EnvVars: []string{"LEDGERCTL_SERVER"},
	}
	tlsFlag = &cli.BoolFlag{
		Name:    "tls",
		Usage:   "connect with TLS",
		EnvVars: []string{"LEDGERCTL_TLS"},
	}
	tokenFlag = &cli.StringFlag{
		Name:    "token",
		Usage:   "bearer access token for mutating calls",
		EnvVars: []string{"LEDGERCTL_TOKEN"},
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "per-call deadline; streaming commands ignore it",
		Value: 10 * time.Second,
	}
)

// dialFunc opens a client connection to the ledger server.
type dialFunc func(c *cli.Context) (*grpc.ClientConn, error)

func dialServer(c *cli.Context) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if c.Bool(tlsFlag.Name) {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(c.String(serverFlag.Name), grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.String(serverFlag.Name), err)
	}
	return conn, nil
}

func newApp(out io.Writer, dial dialFunc) *cli.App {
	app := cli.NewApp()
	app.Name = "ledgerctl"
	app.Usage = "client of the cipherledger encrypted balance ledger"
	app.Version = buildVersion
	app.Writer = out
	app.Flags = []cli.Flag{serverFlag, tlsFlag, tokenFlag, timeoutFlag}
	app.Metadata = map[string]any{"dial": dial}
	app.Commands = []*cli.Command{
		commandKeygen,
		commandLogin,
		commandLogout,
		commandAuthenticate,
		commandRequestDeposit,
		commandStoreDeposit,
		commandRequestTransfer,
		commandProcessTransfer,
		commandBalance,
		commandIndex,
		commandDeposit,
		commandTransfer,
		commandSupply,
		commandInfo,
		commandEvents,
	}
	return app
}

func main() {
	if err := newApp(os.Stdout, dialServer).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is an open connection plus the call context of one command.
type session struct {
	conn   *grpc.ClientConn
	ledger ledgerapi.LedgerClient
	auth   ledgerapi.AuthClient
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *session) Close() {
	s.cancel()
	_ = s.conn.Close()
}

// connect dials the server and prepares a context carrying the bearer token
// when one is configured. Streaming commands pass stream=true to skip the
// per-call deadline.
func connect(c *cli.Context, stream bool) (*session, error) {
	dial := c.App.Metadata["dial"].(dialFunc)
	conn, err := dial(c)
	if err != nil {
		return nil, err
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if stream {
		ctx, cancel = context.WithCancel(c.Context)
	} else {
		ctx, cancel = context.WithTimeout(c.Context, c.Duration(timeoutFlag.Name))
	}
	if token := c.String(tokenFlag.Name); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}

	return &session{
		conn:   conn,
		ledger: ledgerapi.NewLedgerClient(conn),
		auth:   ledgerapi.NewAuthClient(conn),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

var protoJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// messageJSON renders a protobuf message with its proto field names.
func messageJSON(m proto.Message) (json.RawMessage, error) {
	raw, err := protoJSON.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", m.ProtoReflect().Descriptor().Name(), err)
	}
	return raw, nil
}

// printJSON writes v as indented JSON. Messages go through protojson, whose
// output spacing is unstable, so the result is always re-indented here.
func printJSON(w io.Writer, v any) error {
	var (
		raw []byte
		err error
	)
	if m, ok := v.(proto.Message); ok {
		raw, err = messageJSON(m)
	} else {
		raw, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

// hexFlag decodes a required hex-encoded flag value.
func hexFlag(c *cli.Context, name string) ([]byte, error) {
	raw := c.String(name)
	if raw == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	b, err := model.DecodeHex(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

// firstArg returns the single positional argument of a command.
func firstArg(c *cli.Context, what string) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s argument", what)
	}
	return c.Args().First(), nil
}
