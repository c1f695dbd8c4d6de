package dom

import "fmt"

// Quota holds the resource caps described by §5 ("Resource quotas"): limits
// a host installs on a document so an adversarial or buggy caller cannot
// grow it without bound. The zero Quota imposes no limits, matching every
// other optional-configuration surface in this package (SetFragmentParser,
// DOMImplementation options) that defaults to "off" rather than requiring
// setup.
type Quota struct {
	// MaxNodes caps the number of nodes Document's Create* methods will
	// mint. Zero means unlimited.
	MaxNodes int

	// MaxAttributesPerElement caps the number of distinct attributes a
	// single element may carry. Zero means unlimited.
	MaxAttributesPerElement int

	// MaxListenersPerTarget caps the number of event listeners registered
	// on a single EventTarget-capable node. Zero means unlimited.
	MaxListenersPerTarget int

	// SecurityLogger, if set, is invoked once immediately before a cap is
	// enforced as a QuotaExceededError, with kind identifying which cap
	// ("node", "attribute", "listener") and detail a human-readable
	// description. This package does not import log/slog itself (the same
	// posture as cabi.Table.SetAnomalyLogger) -- a host wires this to its
	// own structured logger.
	SecurityLogger func(kind, detail string)
}

func (q Quota) log(kind, detail string) {
	if q.SecurityLogger != nil {
		q.SecurityLogger(kind, detail)
	}
}

// SetQuota installs resource caps on d. Caps apply only to growth from this
// call forward: nodes, attributes, and listeners already present do not
// retroactively violate a newly lowered cap.
func (d *Document) SetQuota(q Quota) {
	d.AsNode().documentData.quota = q
}

// Quota returns d's currently installed resource caps.
func (d *Document) Quota() Quota {
	return d.AsNode().documentData.quota
}

// admitNode enforces MaxNodes before a new node is created through one of
// Document's Create* factory methods. Go's garbage collector, not this
// package, reclaims nodes (§3's ref-counting note), so nodeCount is a
// monotonic creation counter rather than a precise live count -- a document
// that creates and discards many nodes still eventually trips the cap,
// which matches the cap's purpose of bounding unbounded growth.
func (d *Document) admitNode() error {
	dd := d.AsNode().documentData
	if dd.quota.MaxNodes > 0 && dd.nodeCount >= dd.quota.MaxNodes {
		dd.quota.log("node", fmt.Sprintf("document has reached its node quota of %d", dd.quota.MaxNodes))
		return ErrQuotaExceeded(fmt.Sprintf("document node count would exceed quota of %d", dd.quota.MaxNodes))
	}
	dd.nodeCount++
	return nil
}

// admitAttribute enforces MaxAttributesPerElement before el gains a new
// attribute. count is the attribute count el would have after the new
// attribute is added; callers check this before inserting, so count already
// includes the would-be addition.
func admitAttribute(el *Element, count int) error {
	doc := el.AsNode().ownerDoc
	if doc == nil {
		return nil
	}
	q := doc.AsNode().documentData.quota
	if q.MaxAttributesPerElement > 0 && count > q.MaxAttributesPerElement {
		q.log("attribute", fmt.Sprintf("element %q has reached its attribute quota of %d", el.TagName(), q.MaxAttributesPerElement))
		return ErrQuotaExceeded(fmt.Sprintf("element attribute count would exceed quota of %d", q.MaxAttributesPerElement))
	}
	return nil
}

// admitListener enforces MaxListenersPerTarget before n gains a new event
// listener. count is the listener count n would have after the new listener
// is registered.
func admitListener(n *Node, count int) error {
	doc := n.ownerDoc
	if n.nodeType == DocumentNode {
		doc = (*Document)(n)
	}
	if doc == nil {
		return nil
	}
	q := doc.AsNode().documentData.quota
	if q.MaxListenersPerTarget > 0 && count > q.MaxListenersPerTarget {
		q.log("listener", fmt.Sprintf("node %q has reached its listener quota of %d", n.NodeName(), q.MaxListenersPerTarget))
		return ErrQuotaExceeded(fmt.Sprintf("event target listener count would exceed quota of %d", q.MaxListenersPerTarget))
	}
	return nil
}
