package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/my-site/internal/blog"
	"github.com/daniilsolovey/my-site/internal/ledger"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NSBlog   = "blog"
	NSLedger = "ledger"
)

func New(logger *slog.Logger, blogManager *blog.Manager, ledgerManager *ledger.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NSBlog, NewBlogService(blogManager))
	rpcServer.Register(NSLedger, NewLedgerService(ledgerManager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "my-site", nil))

	return rpcServer
}
