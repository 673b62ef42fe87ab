package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/ed25519"

	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// keyFile is the on-disk form of a ledger identity.
type keyFile struct {
	Address string `json:"address"`
	Seed    string `json:"seed"`
}

var (
	keyFileFlag = &cli.StringFlag{
		Name:     "key-file",
		Usage:    "identity file written by keygen",
		Required: true,
		EnvVars:  []string{"LEDGERCTL_KEY_FILE"},
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "write the identity to this file instead of stdout",
	}
	refreshTokenFlag = &cli.StringFlag{
		Name:     "refresh-token",
		Usage:    "refresh token printed by login",
		Required: true,
		EnvVars:  []string{"LEDGERCTL_REFRESH_TOKEN"},
	}
	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "revoke every refresh token of the identity, not only this one",
	}
)

var commandKeygen = &cli.Command{
	Name:  "keygen",
	Usage: "generate a new ed25519 ledger identity",
	Flags: []cli.Flag{outFlag},
	Action: func(c *cli.Context) error {
		address, priv, err := account.GenerateKey(rand.Reader)
		if err != nil {
			return err
		}

		kf := keyFile{Address: address.String(), Seed: model.EncodeHex(priv.Seed())}
		if path := c.String(outFlag.Name); path != "" {
			if err := writeKeyFile(path, kf); err != nil {
				return err
			}
			return printJSON(c.App.Writer, map[string]string{"address": kf.Address, "file": path})
		}
		return printJSON(c.App.Writer, kf)
	},
}

var commandLogin = &cli.Command{
	Name:  "login",
	Usage: "sign a login challenge and print access and refresh tokens",
	Flags: []cli.Flag{keyFileFlag},
	Action: func(c *cli.Context) error {
		address, priv, err := readKeyFile(c.String(keyFileFlag.Name))
		if err != nil {
			return err
		}

		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		challenge, err := s.auth.BeginLogin(s.ctx, &ledgerapi.BeginLoginRequest{Address: address.String()})
		if err != nil {
			return fmt.Errorf("begin login: %w", err)
		}

		signature := ed25519.Sign(priv, account.LoginMessage(challenge.GetSessionId(), challenge.GetNonce()))
		tokens, err := s.auth.CompleteLogin(s.ctx, &ledgerapi.CompleteLoginRequest{
			SessionId: challenge.GetSessionId(),
			Signature: signature,
		})
		if err != nil {
			return fmt.Errorf("complete login: %w", err)
		}

		return printJSON(c.App.Writer, tokens)
	},
}

var commandLogout = &cli.Command{
	Name:  "logout",
	Usage: "revoke a refresh token, or with --all every session of its owner",
	Flags: []cli.Flag{refreshTokenFlag, allFlag},
	Action: func(c *cli.Context) error {
		s, err := connect(c, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := s.auth.Revoke(s.ctx, &ledgerapi.RevokeRequest{
			RefreshToken: c.String(refreshTokenFlag.Name),
			All:          c.Bool(allFlag.Name),
		}); err != nil {
			return fmt.Errorf("revoke: %w", err)
		}
		return printJSON(c.App.Writer, map[string]string{"status": "ok"})
	},
}

func writeKeyFile(path string, kf keyFile) error {
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

func readKeyFile(path string) (model.Address, ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return "", nil, fmt.Errorf("failed to parse key file: %w", err)
	}

	seed, err := model.DecodeHex(kf.Seed)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	address, priv, err := account.FromSeed(seed)
	if err != nil {
		return "", nil, err
	}
	if kf.Address != "" && kf.Address != address.String() {
		return "", nil, fmt.Errorf("key file address %s does not match its seed", kf.Address)
	}
	return address, priv, nil
}
