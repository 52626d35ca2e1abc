/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package relationship

import (
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func ProvideCheckers(db graph.IDatabase, schemas schema.ISchemaRegistry) []validators.IConstraintChecker {
	return []validators.IConstraintChecker{
		&peerChecker{db: db, schemas: schemas},
		&countChecker{db: db},
		&optionalChecker{db: db},
	}
}
