package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/calebmartin/larder/internal/backup"
	"github.com/calebmartin/larder/internal/config"
	"github.com/calebmartin/larder/internal/handler"
	"github.com/calebmartin/larder/internal/middleware"
	"github.com/calebmartin/larder/internal/store"
	ws "github.com/calebmartin/larder/internal/websocket"
)

type Server struct {
	db         *sql.DB
	hub        *ws.Hub
	shoppingH  *handler.ShoppingHandler
	pantryH    *handler.PantryHandler
	analyticsH *handler.AnalyticsHandler
	catalogH   *handler.CatalogHandler
	backupH    *handler.BackupHandler
	logger     *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	docs := store.NewDocumentStore(db)
	shoppingStore := store.NewShoppingListStore(docs)
	pantryStore := store.NewPantryStore(docs)

	backupMgr := backup.NewManager(shoppingStore, pantryStore, logger.With("component", "backup"))

	return &Server{
		db:         db,
		hub:        hub,
		shoppingH:  handler.NewShoppingHandler(shoppingStore, hub, logger.With("component", "shopping")),
		pantryH:    handler.NewPantryHandler(pantryStore, hub, logger.With("component", "pantry")),
		analyticsH: handler.NewAnalyticsHandler(shoppingStore, logger.With("component", "analytics")),
		catalogH:   handler.NewCatalogHandler(),
		backupH:    handler.NewBackupHandler(backupMgr, cfg.BackupPassphrase, hub, logger.With("component", "backup_handler")),
		logger:     logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.Handler(s.hub, s.logger.With("component", "websocket")))

	// Shopping list API
	mux.HandleFunc("GET /api/lists", s.shoppingH.List)
	mux.HandleFunc("POST /api/lists", s.shoppingH.Create)
	mux.HandleFunc("GET /api/lists/{id}", s.shoppingH.Get)
	mux.HandleFunc("DELETE /api/lists/{id}", s.shoppingH.Delete)
	mux.HandleFunc("POST /api/lists/{id}/items", s.shoppingH.AddItem)
	mux.HandleFunc("DELETE /api/lists/{id}/items/{item_id}", s.shoppingH.DeleteItem)
	mux.HandleFunc("POST /api/lists/{id}/items/{item_id}/check", s.shoppingH.ToggleItem)

	// Pantry API
	mux.HandleFunc("GET /api/pantry", s.pantryH.List)
	mux.HandleFunc("POST /api/pantry", s.pantryH.Create)
	mux.HandleFunc("PUT /api/pantry/{id}", s.pantryH.Update)
	mux.HandleFunc("DELETE /api/pantry/{id}", s.pantryH.Delete)
	mux.HandleFunc("GET /api/pantry/expiring", s.pantryH.Expiring)

	// Analytics API
	mux.HandleFunc("GET /api/analytics/spending", s.analyticsH.Spending)
	mux.HandleFunc("GET /api/analytics/breakdown", s.analyticsH.Breakdown)

	// Static reference data
	mux.HandleFunc("GET /api/catalog/stores", s.catalogH.Stores)
	mux.HandleFunc("GET /api/catalog/categories", s.catalogH.Categories)
	mux.HandleFunc("GET /api/catalog/units", s.catalogH.Units)

	// Backup
	mux.HandleFunc("GET /api/backup/export", s.backupH.Export)
	mux.HandleFunc("POST /api/backup/import", s.backupH.Import)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
