package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
)

var (
	userFlag = &cli.StringFlag{
		Name:     "user",
		Usage:    "ledger address of the user",
		Required: true,
	}
	amountFlag = &cli.Int64Flag{
		Name:     "amount",
		Usage:    "public deposit amount in custody asset units",
		Required: true,
	}
	indexFlag = &cli.StringFlag{
		Name:     "index",
		Usage:    "hex encrypted account index",
		Required: true,
	}
	requestIDFlag = &cli.StringFlag{
		Name:     "request-id",
		Usage:    "hex deposit request id",
		Required: true,
	}
	accountIndexFlag = &cli.StringFlag{
		Name:     "account-index",
		Usage:    "hex account index the balance is stored at",
		Required: true,
	}
	encryptedAmountFlag = &cli.StringFlag{
		Name:     "encrypted-amount",
		Usage:    "hex encrypted amount",
		Required: true,
	}
	keyUserFlag = &cli.StringFlag{
		Name:  "key-user",
		Usage: "hex key blob encrypted for the user",
	}
	keyServerFlag = &cli.StringFlag{
		Name:  "key-server",
		Usage: "hex key blob encrypted for the server",
	}
)

var commandAuthenticate = &cli.Command{
	Name:  "authenticate",
	Usage: "register the encrypted account index of the calling user",
	Flags: []cli.Flag{userFlag, indexFlag},
	Action: func(c *cli.Context) error {
		index, err := hexFlag(c, indexFlag.Name)
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := s.ledger.AuthenticateUser(s.ctx, &ledgerapi.AuthenticateUserRequest{
			User:           c.String(userFlag.Name),
			EncryptedIndex: index,
		}); err != nil {
			return fmt.Errorf("authenticate: %w", err)
		}
		return printJSON(c.App.Writer, map[string]string{"status": "ok"})
	},
}

var commandRequestDeposit = &cli.Command{
	Name:  "request-deposit",
	Usage: "move funds into custody and open a deposit request",
	Flags: []cli.Flag{userFlag, amountFlag, indexFlag},
	Action: func(c *cli.Context) error {
		index, err := hexFlag(c, indexFlag.Name)
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		resp, err := s.ledger.RequestDeposit(s.ctx, &ledgerapi.RequestDepositRequest{
			User:           c.String(userFlag.Name),
			Amount:         c.Int64(amountFlag.Name),
			EncryptedIndex: index,
		})
		if err != nil {
			return fmt.Errorf("request deposit: %w", err)
		}
		return printJSON(c.App.Writer, resp)
	},
}

var commandStoreDeposit = &cli.Command{
	Name:  "store-deposit",
	Usage: "fulfil a deposit request (authority only)",
	Flags: []cli.Flag{requestIDFlag, userFlag, amountFlag, accountIndexFlag, encryptedAmountFlag, keyUserFlag, keyServerFlag},
	Action: func(c *cli.Context) error {
		encryptedAmount, err := hexFlag(c, encryptedAmountFlag.Name)
		if err != nil {
			return err
		}
		keyUser, keyServer, err := keyBlobs(c)
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := s.ledger.StoreDeposit(s.ctx, &ledgerapi.StoreDepositRequest{
			RequestId:          c.String(requestIDFlag.Name),
			User:               c.String(userFlag.Name),
			Amount:             c.Int64(amountFlag.Name),
			AccountIndex:       c.String(accountIndexFlag.Name),
			EncryptedAmount:    encryptedAmount,
			EncryptedKeyUser:   keyUser,
			EncryptedKeyServer: keyServer,
		}); err != nil {
			return fmt.Errorf("store deposit: %w", err)
		}
		return printJSON(c.App.Writer, map[string]string{"status": "ok", "request_id": c.String(requestIDFlag.Name)})
	},
}

var (
	senderFlag = &cli.StringFlag{
		Name:     "sender",
		Usage:    "ledger address of the sender",
		Required: true,
	}
	receiverIndexFlag = &cli.StringFlag{
		Name:     "receiver-index",
		Usage:    "hex encrypted receiver index",
		Required: true,
	}
	transferIDFlag = &cli.StringFlag{
		Name:     "transfer-id",
		Usage:    "hex transfer id",
		Required: true,
	}
	senderIndexFlag = &cli.StringFlag{
		Name:     "sender-index",
		Usage:    "hex account index of the sender balance",
		Required: true,
	}
	senderAmountFlag = &cli.StringFlag{
		Name:     "sender-amount",
		Usage:    "hex new encrypted sender balance",
		Required: true,
	}
	receiverAccountFlag = &cli.StringFlag{
		Name:     "receiver-account-index",
		Usage:    "hex account index of the receiver balance",
		Required: true,
	}
	receiverAmountFlag = &cli.StringFlag{
		Name:     "receiver-amount",
		Usage:    "hex new encrypted receiver balance",
		Required: true,
	}
)

var commandRequestTransfer = &cli.Command{
	Name:  "request-transfer",
	Usage: "record an encrypted transfer intent",
	Flags: []cli.Flag{senderFlag, receiverIndexFlag, encryptedAmountFlag},
	Action: func(c *cli.Context) error {
		receiverIndex, err := hexFlag(c, receiverIndexFlag.Name)
		if err != nil {
			return err
		}
		encryptedAmount, err := hexFlag(c, encryptedAmountFlag.Name)
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		resp, err := s.ledger.RequestTransfer(s.ctx, &ledgerapi.RequestTransferRequest{
			Sender:                 c.String(senderFlag.Name),
			EncryptedReceiverIndex: receiverIndex,
			EncryptedAmount:        encryptedAmount,
		})
		if err != nil {
			return fmt.Errorf("request transfer: %w", err)
		}
		return printJSON(c.App.Writer, resp)
	},
}

var commandProcessTransfer = &cli.Command{
	Name:  "process-transfer",
	Usage: "fulfil a transfer with new sender and receiver balances (authority only)",
	Flags: []cli.Flag{transferIDFlag, senderIndexFlag, senderAmountFlag, receiverAccountFlag, receiverAmountFlag, keyUserFlag, keyServerFlag},
	Action: func(c *cli.Context) error {
		senderAmount, err := hexFlag(c, senderAmountFlag.Name)
		if err != nil {
			return err
		}
		receiverAmount, err := hexFlag(c, receiverAmountFlag.Name)
		if err != nil {
			return err
		}
		keyUser, keyServer, err := keyBlobs(c)
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := s.ledger.ProcessTransfer(s.ctx, &ledgerapi.ProcessTransferRequest{
			TransferId: c.String(transferIDFlag.Name),
			Sender: &ledgerapi.BalanceUpdate{
				AccountIndex:       c.String(senderIndexFlag.Name),
				EncryptedAmount:    senderAmount,
				EncryptedKeyUser:   keyUser,
				EncryptedKeyServer: keyServer,
			},
			Receiver: &ledgerapi.BalanceUpdate{
				AccountIndex:       c.String(receiverAccountFlag.Name),
				EncryptedAmount:    receiverAmount,
				EncryptedKeyUser:   keyUser,
				EncryptedKeyServer: keyServer,
			},
		}); err != nil {
			return fmt.Errorf("process transfer: %w", err)
		}
		return printJSON(c.App.Writer, map[string]string{"status": "ok", "transfer_id": c.String(transferIDFlag.Name)})
	},
}

// keyBlobs decodes the optional key blob flags.
func keyBlobs(c *cli.Context) ([]byte, []byte, error) {
	var keyUser, keyServer []byte
	var err error
	if c.IsSet(keyUserFlag.Name) {
		if keyUser, err = hexFlag(c, keyUserFlag.Name); err != nil {
			return nil, nil, err
		}
	}
	if c.IsSet(keyServerFlag.Name) {
		if keyServer, err = hexFlag(c, keyServerFlag.Name); err != nil {
			return nil, nil, err
		}
	}
	return keyUser, keyServer, nil
}
