package user

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/parameter"
)

// ErrUnknownUser is returned when logging in with an id that does not exist
var ErrUnknownUser = errors.New("unknown user")

// Store is the user registry: id to {name, bestScore}, plus the logged-in user
// Persistence failures switch the store to an in-memory backend and are logged, never returned from game paths
type Store struct {
	mu sync.RWMutex

	backend  Backend
	log      zerolog.Logger
	degraded bool

	users   []User // Insertion order
	index   map[string]int
	idCount int
	current string
}

// NewStore creates an empty store over backend; call Load to read persisted users
func NewStore(backend Backend, log zerolog.Logger) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	return &Store{
		backend: backend,
		log:     log.With().Str("component", "users").Logger(),
		index:   make(map[string]int),
	}
}

// Load replaces the store content with the persisted document
// On failure the store starts empty on an in-memory backend and the cause is returned
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.backend.Load()
	if err != nil {
		s.degrade(err)
		doc = &Document{}
	}

	s.users = s.users[:0]
	s.index = make(map[string]int, len(doc.Users))
	for _, u := range doc.Users {
		if _, dup := s.index[u.ID]; dup {
			continue
		}
		s.index[u.ID] = len(s.users)
		s.users = append(s.users, u.clone())
	}
	s.idCount = max(doc.IDCount, len(s.users))
	s.current = ""
	if _, ok := s.index[doc.CurrentUser]; ok {
		s.current = doc.CurrentUser
	}

	s.log.Debug().Int("users", len(s.users)).Msg("users loaded")
	return err
}

// Degraded reports whether persistence failed and the store runs in memory
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

func (s *Store) degrade(err error) {
	s.log.Warn().Err(err).Msg("user persistence unavailable, continuing in memory")
	if cerr := s.backend.Close(); cerr != nil {
		s.log.Debug().Err(cerr).Msg("close failed backend")
	}
	s.backend = NewMemoryBackend()
	s.degraded = true
}

// persist writes the document; caller holds the write lock
func (s *Store) persist() {
	doc := &Document{
		Users:       make([]User, len(s.users)),
		IDCount:     s.idCount,
		CurrentUser: s.current,
	}
	for i, u := range s.users {
		doc.Users[i] = u.clone()
	}
	if err := s.backend.Save(doc); err != nil {
		s.degrade(err)
		_ = s.backend.Save(doc)
	}
}

// NewUser creates, saves and logs in a user; a blank name becomes DefaultPlayerName
func (s *Store) NewUser(name string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.newUser(name)
	s.current = u.ID
	s.persist()
	return u.clone()
}

func (s *Store) newUser(name string) User {
	u := User{
		ID:   "u" + strconv.Itoa(s.idCount),
		Name: normalizeName(name),
	}
	s.idCount++
	s.index[u.ID] = len(s.users)
	s.users = append(s.users, u)
	return u
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return parameter.DefaultPlayerName
	}
	return name
}

// Login makes id the current user
func (s *Store) Login(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return errors.Wrapf(ErrUnknownUser, "login %q", id)
	}
	s.current = id
	s.persist()
	return nil
}

// FindByName returns the first user created with name
func (s *Store) FindByName(name string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.findByName(normalizeName(name)); i >= 0 {
		return s.users[i].clone(), true
	}
	return User{}, false
}

func (s *Store) findByName(name string) int {
	for i, u := range s.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

// LoginByName logs in the user called name, creating it first if needed
func (s *Store) LoginByName(name string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u User
	if i := s.findByName(normalizeName(name)); i >= 0 {
		u = s.users[i]
	} else {
		u = s.newUser(name)
	}
	s.current = u.ID
	s.persist()
	return u.clone()
}

// Current returns the logged-in user
func (s *Store) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[s.current]; ok {
		return s.users[i].clone(), true
	}
	return User{}, false
}

// UpdateScore records score for the current user when it is strictly better than the kept one
// Returns true when the best score changed
func (s *Store) UpdateScore(score Score) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[s.current]
	if !ok {
		return false
	}
	u := &s.users[i]
	if u.BestScore != nil && !score.Better(*u.BestScore) {
		return false
	}
	u.BestScore = &score
	s.persist()
	return true
}

// Get returns the user with id
func (s *Store) Get(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[id]; ok {
		return s.users[i].clone(), true
	}
	return User{}, false
}

// All returns every user, best score first, users without a score last
func (s *Store) All() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = u.clone()
	}
	slices.SortStableFunc(out, func(a, b User) int { return compareScores(a.BestScore, b.BestScore) })
	return out
}

// UniqueByName returns one user per name, keeping the best score of each, sorted like All
func (s *Store) UniqueByName() []User {
	all := s.All()
	out := make([]User, 0, len(all))
	seen := make(map[string]struct{}, len(all))
	for _, u := range all {
		// All is sorted, so the first occurrence of a name holds its best score
		if _, ok := seen[u.Name]; ok {
			continue
		}
		seen[u.Name] = struct{}{}
		out = append(out, u)
	}
	return out
}

// Len returns the number of users
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Close closes the backend
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Close()
}
