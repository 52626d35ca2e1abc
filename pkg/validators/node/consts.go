/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package node

// Name of the checker which serves parent and children updates
const hierarchyCheckerName = "node.hierarchy.update"
