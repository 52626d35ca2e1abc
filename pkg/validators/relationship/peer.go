/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package relationship

import (
	"context"
	"errors"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/schema"
	"github.com/voedger/graphcheck/pkg/validators"
)

// Reports peers which are not of the peer kind anymore
type peerChecker struct {
	db      graph.IDatabase
	schemas schema.ISchemaRegistry
}

func (c *peerChecker) Name() string { return validators.RelationshipPeerUpdate }

func (c *peerChecker) Supports(req *validators.SchemaConstraintValidatorRequest) bool {
	return supports(req, validators.RelationshipPeerUpdate)
}

// Peer kind plus kinds which use it if peer is generic
func (c *peerChecker) allowedKinds(rel *schema.RelationshipSchema, branch string) (map[string]struct{}, error) {
	res := map[string]struct{}{rel.Peer: {}}
	peer, err := c.schemas.Get(rel.Peer, branch)
	if err != nil {
		if errors.Is(err, schema.ErrSchemaNotFound) {
			return res, nil
		}
		return nil, err
	}
	if peer.IsGeneric() {
		for _, k := range peer.UsedBy {
			res[k] = struct{}{}
		}
	}
	return res, nil
}

func (c *peerChecker) Check(ctx context.Context, req *validators.SchemaConstraintValidatorRequest) ([]*validators.GroupedDataPaths, error) {
	rel, err := req.NodeSchema.Relationship(req.SchemaPath.FieldName)
	if err != nil {
		return nil, err
	}
	allowed, err := c.allowedKinds(rel, req.Branch.Name)
	if err != nil {
		return nil, err
	}
	return runPeersQuery(ctx, c.db, validators.RelationshipPeerUpdate, req, rel, func(n graph.NodeState, peers []graph.PeerState) []graph.Row {
		var rows []graph.Row
		for _, p := range peers {
			if p.Peer.HasAnyLabel(allowed) {
				continue
			}
			r := nodeRow(n, p.Branch, p.Peer.StringProp(graph.PropKind))
			r[validators.ColPeerID] = string(p.Peer.ID)
			rows = append(rows, r)
		}
		return rows
	})
}
