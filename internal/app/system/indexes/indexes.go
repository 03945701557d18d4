// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"github.com/payaana/website/internal/app/store/catalog"
	leadstore "github.com/payaana/website/internal/app/store/leads"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
EnsureAll is called at startup. Index creation is idempotent; we aggregate
errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := catalog.New(db).EnsureIndexes(ctx); err != nil {
		problems = append(problems, "catalog: "+err.Error())
	}
	if err := leadstore.New(db).EnsureIndexes(ctx); err != nil {
		problems = append(problems, "leads: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
