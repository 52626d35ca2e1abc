/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package neo4jstore

import "time"

const (
	connectAttempts   = 3
	connectRetryDelay = time.Second
)

const (
	propUUID        = "uuid"
	propSeq         = "seq"
	propProps       = "props"
	propEdgeID      = "id"
	propBranch      = "branch"
	propBranchLevel = "branch_level"
	propFrom        = "from"
	propTo          = "to"
	propStatus      = "status"
	propHierarchy   = "hierarchy"

	branchLabel = "GraphBranch"

	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

const (
	qVertex = "MATCH (n {uuid: $id}) RETURN n"

	qVerticesByLabel = "MATCH (n:%s) WHERE n.uuid IS NOT NULL RETURN n ORDER BY n.seq"

	qOutEdges = "MATCH (n {uuid: $id})-[r:%s]->(m) RETURN r, n.uuid AS from, m.uuid AS to ORDER BY r.seq"

	qInEdges = "MATCH (m)-[r:%s]->(n {uuid: $id}) RETURN r, m.uuid AS from, n.uuid AS to ORDER BY r.seq"

	qPutVertex = "MERGE (n {uuid: $id}) ON CREATE SET n.seq = $seq SET n.props = $props SET n:%s"

	qPutEdge = `MATCH (a {uuid: $from}), (b {uuid: $to})
MERGE (a)-[r:%s {id: $eid}]->(b)
ON CREATE SET r.seq = $seq
SET r += $props`

	qBranch = "MATCH (b:" + branchLabel + " {name: $name}) RETURN b"

	qPutBranch = "MERGE (b:" + branchLabel + " {name: $name}) SET b += $props"
)
