/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package node

import (
	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

func ProvideCheckers(db graph.IDatabase, schemas schema.ISchemaRegistry) []validators.IConstraintChecker {
	return []validators.IConstraintChecker{
		&inheritFromChecker{schemas: schemas},
		&hierarchyChecker{db: db, schemas: schemas},
		&generateProfileChecker{db: db},
	}
}
