package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/odmforest/treesurvey/pkg/server/store"
	gormstore "github.com/odmforest/treesurvey/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	UsersStore     store.UsersStore
	AreasStore     store.AreasStore
	PlotsStore     store.PlotsStore
	TreesStore     store.TreesStore
	VideosStore    store.VideosStore
	TreeViewsStore store.TreeViewsStore
	HealthStore    store.HealthStore

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	host string,
	port string,
	corsOrigins []string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	cors := handlers.CORS(
		handlers.AllowedOrigins(corsOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:         router,
		DB:             db,
		UsersStore:     gormstore.NewUsersStore(db),
		AreasStore:     gormstore.NewAreasStore(db),
		PlotsStore:     gormstore.NewPlotsStore(db),
		TreesStore:     gormstore.NewTreesStore(db),
		VideosStore:    gormstore.NewVideosStore(db),
		TreeViewsStore: gormstore.NewTreeViewsStore(db),
		HealthStore:    gormstore.NewHealthStore(db),
		srv:            srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
