package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
)

var commandBalance = &cli.Command{
	Name:      "balance",
	Usage:     "show the encrypted balance stored at an account index",
	ArgsUsage: "<account-index>",
	Action: func(c *cli.Context) error {
		index, err := firstArg(c, "account index")
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		resp, err := s.ledger.GetEncryptedBalance(s.ctx, &ledgerapi.GetEncryptedBalanceRequest{AccountIndex: index})
		if err != nil {
			return fmt.Errorf("get balance: %w", err)
		}
		return printJSON(c.App.Writer, resp)
	},
}

var commandIndex = &cli.Command{
	Name:      "index",
	Usage:     "show the encrypted account index registered for a user",
	ArgsUsage: "<address>",
	Action: func(c *cli.Context) error {
		user, err := firstArg(c, "address")
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		resp, err := s.ledger.GetUserIndex(s.ctx, &ledgerapi.GetUserIndexRequest{User: user})
		if err != nil {
			return fmt.Errorf("get user index: %w", err)
		}
		return printJSON(c.App.Writer, resp)
	},
}

// requestStatus is the combined view of a request and its completion flag.
type requestStatus struct {
	Request   json.RawMessage `json:"request"`
	Completed bool            `json:"completed"`
}

// eventView prints the payload as the JSON document it is.
type eventView struct {
	ID        uint64          `json:"id"`
	Ledger    uint64          `json:"ledger"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func newEventView(e *ledgerapi.Event) eventView {
	v := eventView{
		ID:        e.GetId(),
		Ledger:    e.GetLedger(),
		Kind:      e.GetKind(),
		CreatedAt: e.GetCreatedAt().AsTime(),
	}
	if len(e.GetPayload()) > 0 {
		v.Payload = e.GetPayload()
	}
	return v
}

var commandDeposit = &cli.Command{
	Name:      "deposit",
	Usage:     "show a deposit request and whether it was fulfilled",
	ArgsUsage: "<request-id>",
	Action: func(c *cli.Context) error {
		id, err := firstArg(c, "request id")
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		req, err := s.ledger.GetDepositRequest(s.ctx, &ledgerapi.IDRequest{Id: id})
		if err != nil {
			return fmt.Errorf("get deposit request: %w", err)
		}
		done, err := s.ledger.DepositCompleted(s.ctx, &ledgerapi.IDRequest{Id: id})
		if err != nil {
			return fmt.Errorf("get deposit completion: %w", err)
		}
		raw, err := messageJSON(req)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, requestStatus{Request: raw, Completed: done.Completed})
	},
}

var commandTransfer = &cli.Command{
	Name:      "transfer",
	Usage:     "show a transfer request and whether it was processed",
	ArgsUsage: "<transfer-id>",
	Action: func(c *cli.Context) error {
		id, err := firstArg(c, "transfer id")
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		req, err := s.ledger.GetTransferRequest(s.ctx, &ledgerapi.IDRequest{Id: id})
		if err != nil {
			return fmt.Errorf("get transfer request: %w", err)
		}
		done, err := s.ledger.TransferCompleted(s.ctx, &ledgerapi.IDRequest{Id: id})
		if err != nil {
			return fmt.Errorf("get transfer completion: %w", err)
		}
		raw, err := messageJSON(req)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, requestStatus{Request: raw, Completed: done.Completed})
	},
}

var commandSupply = &cli.Command{
	Name:  "supply",
	Usage: "show the cumulative fulfilled deposit supply",
	Action: func(c *cli.Context) error {
		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		resp, err := s.ledger.EncryptedSupply(s.ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("get supply: %w", err)
		}
		return printJSON(c.App.Writer, resp)
	},
}

var commandInfo = &cli.Command{
	Name:  "info",
	Usage: "show the ledger authority and custody asset",
	Action: func(c *cli.Context) error {
		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		manager, err := s.ledger.GetServerManager(s.ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("get server manager: %w", err)
		}
		asset, err := s.ledger.GetTokenContract(s.ctx, &emptypb.Empty{})
		if err != nil {
			return fmt.Errorf("get token contract: %w", err)
		}
		return printJSON(c.App.Writer, map[string]string{
			"server_manager": manager.Address,
			"token_contract": asset.Asset,
		})
	},
}

var (
	afterFlag = &cli.Uint64Flag{
		Name:  "after",
		Usage: "only show events with a larger id",
	}
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "page size when not following",
		Value: 100,
	}
	followFlag = &cli.BoolFlag{
		Name:  "follow",
		Usage: "keep streaming new events until interrupted",
	}
)

var commandEvents = &cli.Command{
	Name:  "events",
	Usage: "list or follow ledger events",
	Flags: []cli.Flag{afterFlag, limitFlag, followFlag},
	Action: func(c *cli.Context) error {
		follow := c.Bool(followFlag.Name)

		s, err := connect(c, follow)
		if err != nil {
			return err
		}
		defer s.Close()

		if !follow {
			resp, err := s.ledger.ListEvents(s.ctx, &ledgerapi.ListEventsRequest{
				AfterId: c.Uint64(afterFlag.Name),
				Limit:   int32(c.Int(limitFlag.Name)),
			})
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}
			for _, event := range resp.Events {
				if err := printJSON(c.App.Writer, newEventView(event)); err != nil {
					return err
				}
			}
			return nil
		}

		stream, err := s.ledger.SubscribeEvents(s.ctx, &ledgerapi.SubscribeEventsRequest{AfterId: c.Uint64(afterFlag.Name)})
		if err != nil {
			return fmt.Errorf("subscribe events: %w", err)
		}
		for {
			event, err := stream.Recv()
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			if err != nil {
				return fmt.Errorf("receive event: %w", err)
			}
			if err := printJSON(c.App.Writer, newEventView(event)); err != nil {
				return err
			}
		}
	},
}
