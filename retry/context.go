package retry

import "context"

// policyKey is the key for the policy override in the context.
type policyKey struct{}

// ToContext returns a context carrying a per-call policy override. Operations
// performed with this context use the given policy instead of the one the
// client was constructed with.
func ToContext(ctx context.Context, policy Policy) context.Context {
	return context.WithValue(ctx, policyKey{}, policy)
}

// FromContext returns the policy override stored in the context, if any.
func FromContext(ctx context.Context) (Policy, bool) {
	policy, ok := ctx.Value(policyKey{}).(Policy)
	return policy, ok
}

// FromContextOr returns the policy override stored in the context, or the
// given fallback when none is set.
func FromContextOr(ctx context.Context, fallback Policy) Policy {
	if policy, ok := FromContext(ctx); ok {
		return policy
	}
	return fallback
}
