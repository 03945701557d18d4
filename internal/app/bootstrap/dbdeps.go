// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/payaana/website/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown.
type DBDeps struct {
	// MongoDB client and database (CMS content mirror + leads)
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Mailer for the smtp lead sink
	Mailer *mailer.Mailer
}
