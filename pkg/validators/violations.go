/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/graphcheck/pkg/graph"
	"github.com/voedger/graphcheck/pkg/nodes"
)

// Returns distinct non-empty node ids of the paths in order of appearance
func NodeIDs(paths []DataPath) []graph.VertexID {
	seen := map[graph.VertexID]bool{}
	res := []graph.VertexID{}
	for _, p := range paths {
		if p.NodeID == "" || seen[p.NodeID] {
			continue
		}
		seen[p.NodeID] = true
		res = append(res, p.NodeID)
	}
	return res
}

// Hydrates nodes for display labels.
//
// Node validation errors are degraded to empty result, other errors are returned
func ResolveLabels(ctx context.Context, mgr nodes.IManager, ids []graph.VertexID, branch *graph.Branch, at time.Time, fields []string, m *Metrics) (map[graph.VertexID]*nodes.Node, error) {
	if len(ids) == 0 {
		return map[graph.VertexID]*nodes.Node{}, nil
	}
	res, err := mgr.GetMany(ctx, ids, branch, at, fields)
	if err != nil {
		if !errors.Is(err, nodes.ErrNodeValidation) {
			return nil, err
		}
		logger.Warning(fmt.Sprintf("display labels are not resolved: %v", err))
		m.labelResolutionFailed()
		return map[graph.VertexID]*nodes.Node{}, nil
	}
	return res, nil
}

func fallbackLabel(kind string, id graph.VertexID) string {
	if id == "" {
		return fmt.Sprintf(fallbackLabelNoIDFmt, kind)
	}
	return fmt.Sprintf(fallbackLabelFmt, kind, id)
}

// Builds violations with resolved labels. Messages are not rendered
func BuildViolations(paths []DataPath, labels map[graph.VertexID]*nodes.Node) []*SchemaViolation {
	res := make([]*SchemaViolation, 0, len(paths))
	for _, p := range paths {
		v := &SchemaViolation{NodeID: p.NodeID, NodeKind: p.Kind}
		if n, ok := labels[p.NodeID]; ok && n != nil {
			v.DisplayLabel = n.RenderDisplayLabel()
			v.FullDisplayLabel = v.DisplayLabel
			if n.Schema != nil && len(n.Schema.DisplayLabels) > 0 {
				v.FullDisplayLabel = fmt.Sprintf(fullDisplayLabelFmt, v.DisplayLabel, p.Kind, p.NodeID)
			}
		}
		if v.DisplayLabel == "" {
			v.DisplayLabel = fallbackLabel(p.Kind, p.NodeID)
			v.FullDisplayLabel = v.DisplayLabel
		}
		res = append(res, v)
	}
	return res
}

// Renders messages of violations which labels are already resolved
func RenderMessages(violations []*SchemaViolation, constraintName string, schemaPath string) {
	for _, v := range violations {
		v.Message = fmt.Sprintf(violationMessageFmt, v.FullDisplayLabel, constraintName, schemaPath)
	}
}
