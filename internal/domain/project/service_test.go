package project

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"collabhive-go/internal/domain/collaboration"
	"collabhive-go/internal/domain/link"
	"collabhive-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjectRepo struct {
	projects  map[string]*Project
	members   []collaboration.Member
	favorites map[string]map[string]bool
	links     []link.AttachmentLink

	searchCalls int
	lastQuery   SearchQuery
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:  make(map[string]*Project),
		favorites: make(map[string]map[string]bool),
	}
}

func (r *fakeProjectRepo) addProject(p Project, creatorID, creatorName string) {
	copied := p
	r.projects[p.ID] = &copied
	if creatorID != "" {
		r.members = append(r.members, collaboration.Member{
			ProjectID: p.ID,
			ProfileID: creatorID,
			Name:      creatorName,
			Relation:  collaboration.RelationCreator,
		})
	}
}

func (r *fakeProjectRepo) addMember(projectID, profileID, name string, relation collaboration.Relation, message string) {
	member := collaboration.Member{ProjectID: projectID, ProfileID: profileID, Name: name, Relation: relation}
	if message != "" {
		member.RequestMessage = &message
	}
	r.members = append(r.members, member)
}

func (r *fakeProjectRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeProjectRepo) Search(ctx context.Context, query SearchQuery) ([]Project, error) {
	r.searchCalls++
	r.lastQuery = query

	var result []Project
	for _, p := range r.projects {
		if !p.IsOpen {
			continue
		}
		if len(query.Roles) > 0 && !overlaps(p.RolesOpen, query.Roles) {
			continue
		}
		if len(query.Technologies) > 0 && !overlaps(p.Technologies, query.Technologies) {
			continue
		}
		if len(query.Complexities) > 0 && !overlaps([]string{p.Complexity}, query.Complexities) {
			continue
		}
		result = append(result, *p)
	}

	sort.Slice(result, func(i, j int) bool {
		switch query.Order {
		case SortCreatedAsc:
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		case SortCreatedDesc:
			return result[i].CreatedAt.After(result[j].CreatedAt)
		default:
			return result[i].ID < result[j].ID
		}
	})

	if query.Offset >= len(result) {
		return nil, nil
	}
	result = result[query.Offset:]
	if len(result) > query.Limit {
		result = result[:query.Limit]
	}
	return result, nil
}

func overlaps(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *fakeProjectRepo) GetProject(ctx context.Context, projectID string) (*Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *Project) error {
	copied := *project
	copied.CreatedAt = time.Now()
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) UpdateProject(ctx context.Context, projectID string, patch ProjectPatch) (bool, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return false, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.IsOpen != nil {
		p.IsOpen = *patch.IsOpen
	}
	if patch.Complexity != nil {
		p.Complexity = *patch.Complexity
	}
	if patch.Roles != nil {
		p.RolesOpen = *patch.Roles
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	return true, nil
}

func (r *fakeProjectRepo) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	if _, ok := r.projects[projectID]; !ok {
		return false, nil
	}
	delete(r.projects, projectID)
	return true, nil
}

func (r *fakeProjectRepo) DeleteProjectCollaborations(ctx context.Context, projectID string) error {
	kept := r.members[:0]
	for _, m := range r.members {
		if m.ProjectID != projectID {
			kept = append(kept, m)
		}
	}
	r.members = kept
	return nil
}

func (r *fakeProjectRepo) DeleteProjectFavorites(ctx context.Context, projectID string) error {
	delete(r.favorites, projectID)
	return nil
}

func (r *fakeProjectRepo) DeleteProjectLinks(ctx context.Context, projectID string) error {
	kept := r.links[:0]
	for _, l := range r.links {
		if l.ProjectID == nil || *l.ProjectID != projectID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	return nil
}

func (r *fakeProjectRepo) CreateCollaboration(ctx context.Context, c *collaboration.Collaboration) error {
	r.members = append(r.members, collaboration.Member{ProjectID: c.ProjectID, ProfileID: c.ProfileID, Relation: c.Relation})
	return nil
}

func (r *fakeProjectRepo) ListMembers(ctx context.Context, projectIDs []string, relations []collaboration.Relation) ([]collaboration.Member, error) {
	var result []collaboration.Member
	for _, m := range r.members {
		if !overlaps([]string{m.ProjectID}, projectIDs) {
			continue
		}
		if relations != nil {
			found := false
			for _, rel := range relations {
				if rel == m.Relation {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *fakeProjectRepo) GetCreatorID(ctx context.Context, projectID string) (string, error) {
	for _, m := range r.members {
		if m.ProjectID == projectID && m.Relation == collaboration.RelationCreator {
			return m.ProfileID, nil
		}
	}
	return "", nil
}

func (r *fakeProjectRepo) CountFavorites(ctx context.Context, projectIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, id := range projectIDs {
		result[id] = int64(len(r.favorites[id]))
	}
	return result, nil
}

func (r *fakeProjectRepo) ListFavoriteProfileIDs(ctx context.Context, projectID string) ([]string, error) {
	var result []string
	for profileID := range r.favorites[projectID] {
		result = append(result, profileID)
	}
	return result, nil
}

func (r *fakeProjectRepo) HasFavorite(ctx context.Context, profileID, projectID string) (bool, error) {
	return r.favorites[projectID][profileID], nil
}

func (r *fakeProjectRepo) AddFavorite(ctx context.Context, favorite *Favorite) error {
	if r.favorites[favorite.ProjectID] == nil {
		r.favorites[favorite.ProjectID] = make(map[string]bool)
	}
	r.favorites[favorite.ProjectID][favorite.ProfileID] = true
	return nil
}

func (r *fakeProjectRepo) RemoveFavorite(ctx context.Context, profileID, projectID string) error {
	delete(r.favorites[projectID], profileID)
	return nil
}

func (r *fakeProjectRepo) ListLinks(ctx context.Context, projectID string) ([]link.AttachmentLink, error) {
	var result []link.AttachmentLink
	for _, l := range r.links {
		if l.ProjectID != nil && *l.ProjectID == projectID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) CreateLink(ctx context.Context, l *link.AttachmentLink) error {
	r.links = append(r.links, *l)
	return nil
}

func (r *fakeProjectRepo) DeleteLink(ctx context.Context, projectID, linkID string) (bool, error) {
	for i, l := range r.links {
		if l.ID == linkID && l.ProjectID != nil && *l.ProjectID == projectID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeCache pages Scan results pageSize keys at a time so callers have to
// follow the cursor.
type fakeCache struct {
	mu       sync.Mutex
	items    map[string][]byte
	pageSize int

	getErr    error
	deleteErr error
	// failKey makes deletes of that one key fail.
	failKey string
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte), pageSize: 2}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	value, ok := c.items[key]
	return value, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Scan(ctx context.Context, cursor uint64, pattern string, count int64) ([]string, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []string
	for key := range c.items {
		if strings.HasPrefix(key, strings.TrimSuffix(pattern, "*")) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)

	start := int(cursor)
	if start >= len(matched) {
		return nil, 0, nil
	}
	end := start + c.pageSize
	if end >= len(matched) {
		return matched[start:], 0, nil
	}
	return matched[start:end], uint64(end), nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, key := range keys {
		if key == c.failKey {
			return errors.New("connection reset")
		}
	}
	for _, key := range keys {
		delete(c.items, key)
	}
	return nil
}

func (c *fakeCache) searchKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var keys []string
	for key := range c.items {
		if strings.HasPrefix(key, SearchCacheKeyPrefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func seededCatalog() *fakeProjectRepo {
	repo := newFakeProjectRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.addProject(Project{
		ID: "p1", Name: "Compiler", IsOpen: true, Complexity: "advanced",
		RolesOpen: []string{"backend"}, Technologies: []string{"go", "rust"}, CreatedAt: base,
	}, "u1", "Uma")
	repo.addProject(Project{
		ID: "p2", Name: "Dashboard", IsOpen: true, Complexity: "beginner",
		RolesOpen: []string{"frontend"}, Technologies: []string{"react"}, CreatedAt: base.Add(time.Hour),
	}, "u2", "Vic")
	repo.addProject(Project{
		ID: "p3", Name: "Secret", IsOpen: false, Complexity: "beginner",
		RolesOpen: []string{"frontend"}, Technologies: []string{"react"}, CreatedAt: base.Add(2 * time.Hour),
	}, "u3", "Wes")
	repo.addMember("p1", "u4", "Xia", collaboration.RelationAccepted, "")
	repo.addMember("p1", "u5", "Yan", collaboration.RelationPending, "let me in")
	repo.addMember("p1", "u6", "Zoe", collaboration.RelationDeclined, "")
	return repo
}

func TestFindReturnsOpenProjectsOnly(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, newFakeCache(), logger.Nop(), 0)

	summaries, err := service.Find(context.Background(), SearchParams{SortBy: "newest"})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "p2", summaries[0].ID)
	assert.Equal(t, "p1", summaries[1].ID)

	compiler := summaries[1]
	assert.Equal(t, Person{ID: "u1", Name: "Uma"}, compiler.Creator)
	assert.Equal(t, []Person{{ID: "u4", Name: "Xia"}}, compiler.Collaborators)
	assert.Equal(t, []string{"backend"}, compiler.Roles)
	assert.Equal(t, SortCreatedDesc, repo.lastQuery.Order)
}

func TestFindFilters(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)

	summaries, err := service.Find(context.Background(), SearchParams{Technologies: []string{"rust", "vue"}})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "p1", summaries[0].ID)

	_, err = service.Find(context.Background(), SearchParams{Complexities: []string{"expert"}})
	assert.ErrorIs(t, err, ErrNoProjectsFound)
}

func TestFindRejectsValuesOutsideCatalog(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	service := NewService(repo, cache, logger.Nop(), 0)
	ctx := context.Background()

	cases := []struct {
		params SearchParams
		want   error
	}{
		{SearchParams{Roles: []string{"backend", "astronaut"}}, ErrInvalidRole},
		{SearchParams{Technologies: []string{"ci/cd"}}, ErrInvalidTechnology},
		{SearchParams{Complexities: []string{"trivial"}}, ErrInvalidComplexity},
	}
	for _, tc := range cases {
		_, err := service.Find(ctx, tc.params)
		assert.ErrorIs(t, err, tc.want)
	}
	assert.Empty(t, cache.searchKeys())
	assert.Nil(t, repo.lastQuery.Roles)
}

func TestFindPagination(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	summaries, err := service.Find(ctx, SearchParams{SortBy: "oldest", Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "p2", summaries[0].ID)
	assert.Equal(t, SearchQuery{Order: SortCreatedAsc, Limit: 1, Offset: 1, Roles: []string{}, Complexities: []string{}, Technologies: []string{}}, repo.lastQuery)

	_, err = service.Find(ctx, SearchParams{Page: -3, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.lastQuery.Offset)
	assert.Equal(t, MaxSearchLimit, repo.lastQuery.Limit)

	_, err = service.Find(ctx, SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchLimit, repo.lastQuery.Limit)
	assert.Equal(t, SortDefault, repo.lastQuery.Order)
}

func TestFindServesFromCache(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	service := NewService(repo, cache, logger.Nop(), 0)
	ctx := context.Background()

	first, err := service.Find(ctx, SearchParams{Roles: []string{"frontend", "backend"}})
	require.NoError(t, err)
	second, err := service.Find(ctx, SearchParams{Roles: []string{"backend", "frontend", "backend"}})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.searchCalls)
	assert.Len(t, cache.searchKeys(), 1)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].CreatedAt.Equal(second[i].CreatedAt))
	}
}

func TestFindFallsBackWhenCacheFails(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	service := NewService(repo, cache, logger.Nop(), 0)

	summaries, err := service.Find(context.Background(), SearchParams{})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 1, repo.searchCalls)
}

func TestMutationsInvalidateEverySearchKey(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"

	mutations := map[string]func(*Service) error{
		"create": func(s *Service) error {
			_, err := s.CreateNew(ctx, "u9", "New thing")
			return err
		},
		"update": func(s *Service) error {
			return s.UpdateDetails(ctx, "p1", ProjectPatch{Name: &name})
		},
		"delete": func(s *Service) error {
			return s.Delete(ctx, "p2")
		},
	}

	for label, mutate := range mutations {
		t.Run(label, func(t *testing.T) {
			repo := seededCatalog()
			cache := newFakeCache()
			cache.items["unrelated"] = []byte("keep")
			service := NewService(repo, cache, logger.Nop(), 0)

			for _, params := range []SearchParams{
				{}, {SortBy: "newest"}, {SortBy: "oldest"}, {Roles: []string{"backend"}}, {Page: 2, Limit: 1},
			} {
				_, err := service.Find(ctx, params)
				require.NoError(t, err)
			}
			require.Len(t, cache.searchKeys(), 5)

			require.NoError(t, mutate(service))
			assert.Empty(t, cache.searchKeys())
			assert.Contains(t, cache.items, "unrelated")
		})
	}
}

func TestInvalidationKeepsDeletingAfterAFailure(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	service := NewService(repo, cache, logger.Nop(), 0)
	ctx := context.Background()

	for page := 1; page <= 20; page++ {
		_, err := service.Find(ctx, SearchParams{Page: page, Limit: 1})
		if errors.Is(err, ErrNoProjectsFound) {
			break
		}
		require.NoError(t, err)
	}
	for i := 0; i < 20; i++ {
		cache.items[fmt.Sprintf("%sextra-%02d", SearchCacheKeyPrefix, i)] = []byte("[]")
	}
	keys := cache.searchKeys()
	sort.Strings(keys)
	cache.failKey = keys[0]

	_, err := service.CreateNew(ctx, "u9", "Still created")
	require.NoError(t, err)
	assert.Equal(t, []string{keys[0]}, cache.searchKeys())
}

func TestToggleFavoriteDoesNotInvalidate(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	service := NewService(repo, cache, logger.Nop(), 0)
	ctx := context.Background()

	_, err := service.Find(ctx, SearchParams{})
	require.NoError(t, err)

	_, err = service.ToggleFavorite(ctx, "u4", "p1")
	require.NoError(t, err)
	assert.Len(t, cache.searchKeys(), 1)
}

func TestInvalidationFailureDoesNotFailMutation(t *testing.T) {
	repo := seededCatalog()
	cache := newFakeCache()
	service := NewService(repo, cache, logger.Nop(), 0)
	ctx := context.Background()

	_, err := service.Find(ctx, SearchParams{})
	require.NoError(t, err)
	cache.deleteErr = errors.New("READONLY")

	id, err := service.CreateNew(ctx, "u9", "Still created")
	require.NoError(t, err)
	assert.Contains(t, repo.projects, id)
}

func TestToggleFavorite(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	message, err := service.ToggleFavorite(ctx, "u4", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Added project to favorites", message)
	assert.True(t, repo.favorites["p1"]["u4"])

	message, err = service.ToggleFavorite(ctx, "u4", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Removed project from favorites", message)
	assert.False(t, repo.favorites["p1"]["u4"])

	_, err = service.ToggleFavorite(ctx, "u1", "p1")
	assert.ErrorIs(t, err, ErrCannotFavoriteOwn)

	_, err = service.ToggleFavorite(ctx, "u4", "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetDetailsShowsRequestsToCreatorOnly(t *testing.T) {
	repo := seededCatalog()
	require.NoError(t, repo.AddFavorite(context.Background(), &Favorite{ProfileID: "u4", ProjectID: "p1"}))
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	detail, err := service.GetDetails(ctx, "p1", "u1")
	require.NoError(t, err)
	require.NotNil(t, detail.Creator)
	assert.Equal(t, "u1", detail.Creator.ID)
	assert.Equal(t, []Person{{ID: "u4", Name: "Xia"}}, detail.Collaborators)
	require.Len(t, detail.CollaborationRequests, 2)
	assert.Equal(t, "u5", detail.CollaborationRequests[0].Sender.ID)
	assert.False(t, detail.CollaborationRequests[0].IsDeclined)
	require.NotNil(t, detail.CollaborationRequests[0].Message)
	assert.Equal(t, "let me in", *detail.CollaborationRequests[0].Message)
	assert.True(t, detail.CollaborationRequests[1].IsDeclined)
	assert.Equal(t, int64(1), detail.FavoriteCount)
	assert.False(t, detail.UserHasFavorited)

	detail, err = service.GetDetails(ctx, "p1", "u4")
	require.NoError(t, err)
	assert.Empty(t, detail.CollaborationRequests)
	assert.True(t, detail.UserHasFavorited)

	detail, err = service.GetDetails(ctx, "p1", "")
	require.NoError(t, err)
	assert.Empty(t, detail.CollaborationRequests)
	assert.False(t, detail.UserHasFavorited)

	_, err = service.GetDetails(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCreateNew(t *testing.T) {
	repo := newFakeProjectRepo()
	service := NewService(repo, nil, logger.Nop(), 0)

	id, err := service.CreateNew(context.Background(), "u1", "  Ray tracer ")
	require.NoError(t, err)

	created := repo.projects[id]
	require.NotNil(t, created)
	assert.Equal(t, "Ray tracer", created.Name)
	assert.False(t, created.IsOpen)
	assert.Equal(t, "beginner", created.Complexity)
	assert.Empty(t, created.RolesOpen)

	creatorID, err := repo.GetCreatorID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "u1", creatorID)

	_, err = service.CreateNew(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestUpdateDetails(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	open := false
	roles := []string{"designer", " designer", ""}
	require.NoError(t, service.UpdateDetails(ctx, "p1", ProjectPatch{IsOpen: &open, Roles: &roles}))
	assert.False(t, repo.projects["p1"].IsOpen)
	assert.Equal(t, []string{"designer"}, []string(repo.projects["p1"].RolesOpen))
	assert.Equal(t, "Compiler", repo.projects["p1"].Name)

	bogus := "legendary"
	assert.ErrorIs(t, service.UpdateDetails(ctx, "p1", ProjectPatch{Complexity: &bogus}), ErrInvalidComplexity)

	name := "x"
	assert.ErrorIs(t, service.UpdateDetails(ctx, "missing", ProjectPatch{Name: &name}), ErrProjectNotFound)
	assert.ErrorIs(t, service.UpdateDetails(ctx, "missing", ProjectPatch{}), ErrProjectNotFound)
}

func TestDeleteCascades(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	_, err := service.AddLink(ctx, "p1", link.Input{LinkType: "github", Title: "Repo", URL: "https://github.com/x/y"})
	require.NoError(t, err)
	require.NoError(t, repo.AddFavorite(ctx, &Favorite{ProfileID: "u4", ProjectID: "p1"}))

	require.NoError(t, service.Delete(ctx, "p1"))
	assert.NotContains(t, repo.projects, "p1")
	assert.Empty(t, repo.favorites["p1"])
	links, _ := repo.ListLinks(ctx, "p1")
	assert.Empty(t, links)
	members, _ := repo.ListMembers(ctx, []string{"p1"}, nil)
	assert.Empty(t, members)

	assert.ErrorIs(t, service.Delete(ctx, "p1"), ErrProjectNotFound)
}

func TestProjectLinks(t *testing.T) {
	repo := seededCatalog()
	service := NewService(repo, nil, logger.Nop(), 0)
	ctx := context.Background()

	created, err := service.AddLink(ctx, "p1", link.Input{LinkType: "docs", Title: "Docs", URL: "https://docs.example.com"})
	require.NoError(t, err)
	require.NotNil(t, created.ProjectID)
	assert.Equal(t, "p1", *created.ProjectID)

	_, err = service.AddLink(ctx, "missing", link.Input{LinkType: "docs", Title: "Docs", URL: "https://docs.example.com"})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = service.AddLink(ctx, "p1", link.Input{LinkType: "docs", Title: "Docs", URL: "docs"})
	assert.ErrorIs(t, err, link.ErrInvalidURL)

	assert.ErrorIs(t, service.RemoveLink(ctx, "p2", created.ID), link.ErrLinkNotFound)
	require.NoError(t, service.RemoveLink(ctx, "p1", created.ID))
}
