package navigation

import "strings"

type State int

const (
	Anonymous State = iota
	AuthenticatedIncomplete
	AuthenticatedComplete
)

func (s State) String() string {
	switch s {
	case AuthenticatedIncomplete:
		return "authenticated_incomplete"
	case AuthenticatedComplete:
		return "authenticated_complete"
	default:
		return "anonymous"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Decision string

const (
	Render             Decision = "render"
	RedirectSignIn     Decision = "redirect_signin"
	RedirectOnboarding Decision = "redirect_onboarding"
	RedirectHome       Decision = "redirect_home"
)

type Access int

const (
	AccessPublic Access = iota
	AccessOnboarding
	AccessProtected
	AccessMentorship
	AccessUnknown
)

const (
	RouteLanding    = "/"
	RouteSignIn     = "/signin"
	RouteSignUp     = "/signup"
	RouteOnboarding = "/onboarding"
	RouteHome       = "/home"
	RouteProfile    = "/profile"
	RouteProjects   = "/projects"
	RouteNewProject = "/projects/new"
	RouteConnect    = "/connect"
	RouteMentorship = "/mentorship"
)

// Classify maps a path to the access rule guarding it.
func Classify(route string) Access {
	route = normalize(route)
	switch route {
	case RouteLanding, RouteSignIn, RouteSignUp:
		return AccessPublic
	case RouteOnboarding:
		return AccessOnboarding
	case RouteMentorship:
		return AccessMentorship
	case RouteHome, RouteProfile, RouteProjects, RouteNewProject, RouteConnect:
		return AccessProtected
	}
	if strings.HasPrefix(route, RouteProjects+"/") {
		return AccessProtected
	}
	return AccessUnknown
}

// Decide tells the presentation layer whether route may render for the given session.
func Decide(state State, needsMentor bool, route string) Decision {
	switch Classify(route) {
	case AccessPublic:
		if state == AuthenticatedComplete {
			return RedirectHome
		}
		return Render

	case AccessOnboarding:
		switch state {
		case Anonymous:
			return RedirectSignIn
		case AuthenticatedComplete:
			return RedirectHome
		default:
			return Render
		}

	case AccessProtected:
		return requireComplete(state)

	case AccessMentorship:
		if d := requireComplete(state); d != Render {
			return d
		}
		if !needsMentor {
			return RedirectHome
		}
		return Render

	default:
		if state == Anonymous {
			return RedirectSignIn
		}
		return RedirectHome
	}
}

func requireComplete(state State) Decision {
	switch state {
	case Anonymous:
		return RedirectSignIn
	case AuthenticatedIncomplete:
		return RedirectOnboarding
	default:
		return Render
	}
}

func normalize(route string) string {
	route = strings.TrimSpace(route)
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return RouteLanding
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
		if route == "" {
			route = RouteLanding
		}
	}
	return strings.ToLower(route)
}
