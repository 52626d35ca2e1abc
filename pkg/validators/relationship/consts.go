/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package relationship

// Name of the checker which serves cardinality, min_count and max_count updates
const countCheckerName = "relationship.count.update"
