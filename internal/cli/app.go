package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/dmitrijs2005/datekeeper/internal/config"
	"github.com/dmitrijs2005/datekeeper/internal/guide"
	"github.com/dmitrijs2005/datekeeper/internal/storage"
)

// App is the interactive client. It owns nothing but transient copies of
// entities; all state lives behind the storage adapter.
type App struct {
	config *config.Config
	store  storage.Adapter
	guide  *guide.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp assembles the client around an already-selected storage adapter.
func NewApp(cfg *config.Config, store storage.Adapter, guideClient *guide.Client) *App {
	return &App{
		config: cfg,
		store:  store,
		guide:  guideClient,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}
