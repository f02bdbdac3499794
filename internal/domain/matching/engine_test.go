package matching

import (
	"math/rand"
	"strconv"
	"testing"

	"projectlink/internal/domain"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
	"projectlink/internal/domain/user"
)

func candidateIDs(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestRecommend_EmptyUserSkills(t *testing.T) {
	u := user.Profile{ID: "u1", ExperienceLevel: domain.LevelBeginner}
	cands := []Candidate{
		{ID: "p1", Skills: []string{"a"}},
		{ID: "m1", Skills: []string{"a"}, IsMentor: true},
		{ID: "x1", Skills: []string{"a"}, RequiredLevel: domain.LevelBeginner},
	}
	for _, k := range []Kind{KindPeer, KindMentor, KindProject} {
		if got := Recommend(cands, u, k, 3); len(got) != 0 {
			t.Fatalf("kind %s: expected empty result, got %v", k, candidateIDs(got))
		}
	}
}

func TestRecommend_PeerExcludesSelfAndMentors(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"a"}}
	cands := []Candidate{
		{ID: "u1", Skills: []string{"a"}},
		{ID: "m1", Skills: []string{"a"}, IsMentor: true},
		{ID: "p1", Skills: []string{"a"}},
		{ID: "p2", Skills: []string{"b"}},
	}
	got := candidateIDs(Recommend(cands, u, KindPeer, 3))
	if len(got) != 1 || got[0] != "p1" {
		t.Fatalf("unexpected peers %v", got)
	}
}

func TestRecommend_MentorRequiresRole(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"a"}}
	cands := []Candidate{
		{ID: "p1", Skills: []string{"a"}},
		{ID: "m1", Skills: []string{"a"}, IsMentor: true},
	}
	got := candidateIDs(Recommend(cands, u, KindMentor, 3))
	if len(got) != 1 || got[0] != "m1" {
		t.Fatalf("unexpected mentors %v", got)
	}
}

func TestRecommend_ProjectScenario(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"react", "node"}, ExperienceLevel: domain.LevelBeginner}
	projects := []project.Project{
		{ID: "p1", Skills: []string{"react"}, RequiredLevel: domain.LevelBeginner},
		{ID: "p2", Skills: []string{"python"}, RequiredLevel: domain.LevelBeginner},
	}
	got := RecommendOf(projects, u, KindProject, 3, ProjectCandidate)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected projects %#v", got)
	}
}

func TestRecommend_ProjectLevelMustMatch(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"react"}, ExperienceLevel: domain.LevelAdvanced}
	projects := []project.Project{{ID: "p1", Skills: []string{"react"}, RequiredLevel: domain.LevelBeginner}}
	if got := RecommendOf(projects, u, KindProject, 3, ProjectCandidate); len(got) != 0 {
		t.Fatalf("expected no projects, got %#v", got)
	}
}

func TestRecommend_PeerRankingScenario(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"a", "b", "c"}}
	peers := []member.Member{
		{ID: "p2", Skills: []string{"a"}, Role: member.RolePeer},
		{ID: "p1", Skills: []string{"a", "b"}, Role: member.RolePeer},
	}
	ranked := RankOf(peers, u, KindPeer, 3, MemberCandidate)
	if len(ranked) != 2 || ranked[0].Item.ID != "p1" || ranked[0].Score != 2 || ranked[1].Score != 1 {
		t.Fatalf("unexpected ranking %#v", ranked)
	}
}

func TestRecommend_StableTiesAndLimit(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"a", "b"}}
	cands := []Candidate{
		{ID: "c1", Skills: []string{"a"}},
		{ID: "c2", Skills: []string{"a", "b"}},
		{ID: "c3", Skills: []string{"b"}},
		{ID: "c4", Skills: []string{"a"}},
	}
	got := candidateIDs(Recommend(cands, u, KindPeer, 3))
	want := []string{"c2", "c1", "c3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}

	if got := Recommend(cands, u, KindPeer, 0); len(got) != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, len(got))
	}
}

func TestRecommend_DuplicateSkillsCountOnce(t *testing.T) {
	u := user.Profile{ID: "u1", Skills: []string{"a", "a", "b"}}
	cands := []Candidate{
		{ID: "c1", Skills: []string{"a", "a", "a"}},
		{ID: "c2", Skills: []string{"a", "b"}},
	}
	ranked := RankOf(cands, u, KindPeer, 3, func(c Candidate) Candidate { return c })
	if ranked[0].Item.ID != "c2" || ranked[1].Score != 1 {
		t.Fatalf("unexpected ranking %#v", ranked)
	}
}

func TestRecommend_RandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"a", "b", "c", "d", "e", "f"}
	pick := func() []string {
		n := rng.Intn(4)
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, pool[rng.Intn(len(pool))])
		}
		return out
	}

	for iter := 0; iter < 200; iter++ {
		u := user.Profile{ID: "c0", Skills: pick()}
		cands := make([]Candidate, 0, 10)
		for i := 0; i < 10; i++ {
			cands = append(cands, Candidate{ID: "c" + strconv.Itoa(i), Skills: pick(), IsMentor: rng.Intn(3) == 0})
		}
		limit := 1 + rng.Intn(5)

		ranked := RankOf(cands, u, KindPeer, limit, func(c Candidate) Candidate { return c })
		if len(ranked) > limit {
			t.Fatalf("iteration %d: %d results exceed limit %d", iter, len(ranked), limit)
		}

		index := make(map[string]int, len(cands))
		for i, c := range cands {
			index[c.ID] = i
		}
		for i, r := range ranked {
			if r.Item.ID == u.ID {
				t.Fatalf("iteration %d: self returned", iter)
			}
			if i == 0 {
				continue
			}
			prev := ranked[i-1]
			if prev.Score < r.Score {
				t.Fatalf("iteration %d: not sorted descending", iter)
			}
			if prev.Score == r.Score && index[prev.Item.ID] > index[r.Item.ID] {
				t.Fatalf("iteration %d: tie order not preserved", iter)
			}
		}
	}
}
