package usecase

import (
	"context"
	"errors"
	"strings"

	"projectlink/internal/domain/navigation"
	"projectlink/internal/domain/user"
	"projectlink/internal/repository"
)

type SessionState struct {
	State       navigation.State `json:"state"`
	NeedsMentor bool             `json:"needsMentor"`
	User        *user.Profile    `json:"user,omitempty"`
}

type SessionUsecase interface {
	Current(ctx context.Context) (user.Profile, error)
	State(ctx context.Context) (SessionState, error)
	SetCurrentUser(ctx context.Context, p user.Profile) (user.Profile, error)
	UpdateProfile(ctx context.Context, patch user.Patch) (user.Profile, error)
	CompleteOnboarding(ctx context.Context, in user.OnboardingInput) (user.Profile, error)
	SignIn(ctx context.Context, email string) (SessionState, error)
	ClearSession(ctx context.Context) error
	Navigate(ctx context.Context, route string) (navigation.Decision, error)
}

type Session struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	clock    *Clock
}

func NewSessionUsecase(users repository.UserRepository, sessions repository.SessionRepository, clock *Clock) *Session {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Session{users: users, sessions: sessions, clock: clock}
}

func (u *Session) Current(ctx context.Context) (user.Profile, error) {
	p, ok, err := u.users.Current(ctx)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	if !ok {
		return user.Profile{}, ErrNoSession
	}
	return p, nil
}

func (u *Session) State(ctx context.Context) (SessionState, error) {
	p, ok, err := u.users.Current(ctx)
	if err != nil {
		return SessionState{}, ErrInternal
	}
	return stateOf(p, ok), nil
}

func stateOf(p user.Profile, ok bool) SessionState {
	if !ok {
		return SessionState{State: navigation.Anonymous}
	}
	st := navigation.AuthenticatedIncomplete
	if p.OnboardingCompleted {
		st = navigation.AuthenticatedComplete
	}
	return SessionState{State: st, NeedsMentor: p.NeedsMentor, User: &p}
}

// SetCurrentUser replaces the session user. A profile with
// onboardingCompleted=false is how a sign-up enters the incomplete state.
func (u *Session) SetCurrentUser(ctx context.Context, p user.Profile) (user.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Name == "" && p.Email == "" {
		return user.Profile{}, invalidField("Name or email is required")
	}
	if p.ExperienceLevel != "" && !p.ExperienceLevel.Valid() {
		return user.Profile{}, invalidField("Experience level must be beginner, intermediate or advanced")
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = user.NewID(u.clock.Now())
	}
	if p.Skills == nil {
		p.Skills = make([]string, 0)
	}

	if err := u.users.SaveCurrent(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	if err := u.users.Mirror(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Session) UpdateProfile(ctx context.Context, patch user.Patch) (user.Profile, error) {
	if err := user.ValidatePatch(patch); err != nil {
		return user.Profile{}, invalidInput(err)
	}
	cur, err := u.Current(ctx)
	if err != nil {
		return user.Profile{}, err
	}

	next := cur.Apply(patch)
	if err := u.users.SaveCurrent(ctx, next); err != nil {
		return user.Profile{}, ErrInternal
	}
	if err := u.users.Mirror(ctx, next); err != nil {
		return user.Profile{}, ErrInternal
	}
	return next, nil
}

// CompleteOnboarding validates first and then writes the completed profile in
// one step, so a half-onboarded record is never stored.
func (u *Session) CompleteOnboarding(ctx context.Context, in user.OnboardingInput) (user.Profile, error) {
	if err := user.ValidateOnboarding(in); err != nil {
		return user.Profile{}, invalidInput(err)
	}

	p := user.FromOnboarding(in, u.clock.Now())
	cur, ok, err := u.users.Current(ctx)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	if ok {
		p.ID = cur.ID
		if cur.JoinedDate != "" {
			p.JoinedDate = cur.JoinedDate
		}
		if p.Email == "" {
			p.Email = cur.Email
		}
		p.IsMentor = cur.IsMentor
		p.ProjectsCompleted = cur.ProjectsCompleted
		p.GithubURL = cur.GithubURL
		p.LinkedinURL = cur.LinkedinURL
	}

	if err := u.users.SaveCurrent(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	if err := u.users.Mirror(ctx, p); err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Session) SignIn(ctx context.Context, email string) (SessionState, error) {
	if strings.TrimSpace(email) == "" {
		return SessionState{}, invalidField("Email is required")
	}
	p, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return SessionState{}, ErrUserNotFound
		}
		return SessionState{}, ErrInternal
	}
	if err := u.users.SaveCurrent(ctx, p); err != nil {
		return SessionState{}, ErrInternal
	}
	return stateOf(p, true), nil
}

func (u *Session) ClearSession(ctx context.Context) error {
	if err := u.sessions.Clear(ctx); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Session) Navigate(ctx context.Context, route string) (navigation.Decision, error) {
	st, err := u.State(ctx)
	if err != nil {
		return "", err
	}
	return navigation.Decide(st.State, st.NeedsMentor, route), nil
}
