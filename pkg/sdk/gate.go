package sdk

// Decision tells a gate's caller what to do with the guarded content.
type Decision int

const (
	// DecisionSuspend means the session is still resolving: render nothing,
	// and above all do not redirect yet.
	DecisionSuspend Decision = iota
	// DecisionRender means the guarded content may be shown.
	DecisionRender
	// DecisionRedirect means the caller should navigate to Target.
	DecisionRedirect
)

// GateResult is the outcome of evaluating a route gate. Gates are pure
// functions of session state; they never mutate it.
type GateResult struct {
	Decision Decision
	// Target is the destination when Decision is DecisionRedirect.
	Target Route
	// From preserves the originally requested location so a later login can
	// return the user there.
	From Route
}

// RequireAuth guards protected routes. While the session is loading it
// suspends rather than redirecting, so bootstrap never causes a redirect
// flicker. An unauthenticated session is sent to the login route with the
// requested location preserved.
func RequireAuth(s State, location Route) GateResult {
	switch s.Status {
	case StatusLoading:
		return GateResult{Decision: DecisionSuspend}
	case StatusAuthenticated:
		return GateResult{Decision: DecisionRender}
	default:
		return GateResult{Decision: DecisionRedirect, Target: RouteLogin, From: location}
	}
}

// GuestOnly guards guest routes such as the login and sign-up forms. An
// authenticated user is bounced back to the preserved origin, or to the
// default landing route when there is none.
func GuestOnly(s State, from Route) GateResult {
	switch s.Status {
	case StatusLoading:
		return GateResult{Decision: DecisionSuspend}
	case StatusAuthenticated:
		target := from
		if target == "" {
			target = RouteHome
		}
		return GateResult{Decision: DecisionRedirect, Target: target}
	default:
		return GateResult{Decision: DecisionRender}
	}
}
