// Package quadtree defines a region quadtree indexing 2D points, each carrying
// an opaque payload.
//
// A tree is a hierarchy of nodes. Every node covers an axis-aligned rectangle
// (its zone) and directly holds up to Capacity entries. Inserting into a full
// leaf splits it into four children covering the four equal quadrants of the
// zone:
//
//	(left,top)
//	    +-----------+-----------+
//	    |           |           |
//	    |   NW (0)  |   NE (1)  |
//	    |           |           |
//	    +---------(mid)---------+
//	    |           |           |
//	    |   SW (2)  |   SE (3)  |
//	    |           |           |
//	    +-----------+-----------+
//	                     (left+width,top+height)
//
// Splitting is lazy:
// -----------------
//
//   - entries held by a node at the moment it splits stay in that node;
//   - only entries inserted afterwards are routed to a child;
//   - a point lying on a midline goes to the lower-indexed quadrant
//     (north wins over south, west wins over east).
//
// Hence an inner node may carry entries of its own and every query visits the
// entries of inner nodes as well as the leaves.
//
// A node never turns back into a leaf on its own. Removing entries leaves the
// emptied structure in place until ShrinkToFit (or Clear) reclaims it.
//
// Depth budget:
// ------------
//
// Config.MaxDepth bounds the number of splits along any path. A node whose
// budget is spent keeps accepting entries past Capacity. A negative MaxDepth
// (the default) means no bound.
//
// A Tree is not safe for concurrent use; wrap it into a Locked when it is
// shared between goroutines.
package quadtree
