// potion-brewer-server runs the potion shop over SSH. Every connection gets
// its own cauldron and level progress. Build:
//
//	go build -o potion-brewer-server ./cmd/server
//
// Usage:
//
//	./potion-brewer-server [--port 2222] [--key server_host_key] [--max-sessions 16]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"

	"potion-brewer/assets"

	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "potion-brewer-server",
		Short:        "Serve the potion shop over SSH",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	registerFlags(cmd.Flags())
	return cmd
}

func serve(cfg serverConfig) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	catalog, err := assets.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	signer, err := loadOrCreateHostKey(cfg.KeyFile, logger)
	if err != nil {
		return err
	}

	sh := newShop(catalog, cfg, logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: sh.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone may brew.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("potion shop listening", "addr", srv.Addr, "levels", catalog.LevelCount(), "max_sessions", cfg.MaxSessions)
	logger.Info(fmt.Sprintf("connect with: ssh -t -p %d localhost", cfg.Port))
	return srv.ListenAndServe()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, generating a new one", "path", path)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the server still runs with an ephemeral key.
	pemBlock, err := xssh.MarshalPrivateKey(key, "potion-brewer server")
	if err != nil {
		logger.Warn("cannot marshal host key", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("cannot persist host key", "path", path, "error", err)
		return signer, nil
	}
	logger.Info("generated host key", "path", path)
	return signer, nil
}
