package approval

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/ports"
)

// memoryStore is an in-memory ApprovalStore with injectable failures.
type memoryStore struct {
	state   entities.ApprovalState
	saves   int
	loadErr error
	saveErr error
}

var _ ports.ApprovalStore = (*memoryStore)(nil)

func (m *memoryStore) Load() (*entities.ApprovalState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	state := m.state
	return &state, nil
}

func (m *memoryStore) Save(state *entities.ApprovalState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = *state
	m.saves++
	return nil
}

func (m *memoryStore) ConfigPath() string { return "/tmp/approvals.yaml" }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func rejectionFor(sig string) *entities.Rejection {
	return &entities.Rejection{
		Descriptor: entities.StaticMethodAccess("os", "RemoveAll", "string"),
		Signature:  sig,
	}
}

func TestService_RegisterQueuesPending(t *testing.T) {
	when := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	s, err := NewService(WithClock(fixedClock(when)))
	require.NoError(t, err)

	err = s.Register(rejectionFor("staticMethod os RemoveAll string"), entities.ApprovalContext{User: "alice"})
	require.NoError(t, err)

	pending := s.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "staticMethod os RemoveAll string", pending[0].Signature)
	assert.Equal(t, "alice", pending[0].User)
	assert.Equal(t, when, pending[0].Time)
}

func TestService_RegisterDeduplicates(t *testing.T) {
	s, err := NewService()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Register(rejectionFor("method os/exec.Cmd Run"), entities.ApprovalContext{}))
	}
	assert.Len(t, s.Pending(), 1)
}

func TestService_RegisterSkipsApprovedSignatures(t *testing.T) {
	s, err := NewService()
	require.NoError(t, err)
	require.NoError(t, s.Approve("method os/exec.Cmd Run"))

	require.NoError(t, s.Register(rejectionFor("method os/exec.Cmd Run"), entities.ApprovalContext{}))
	assert.Empty(t, s.Pending())
}

func TestService_ApproveMovesPendingToApproved(t *testing.T) {
	s, err := NewService()
	require.NoError(t, err)
	require.NoError(t, s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{}))

	require.NoError(t, s.Approve("new os.File string"))

	assert.Empty(t, s.Pending())
	assert.True(t, s.IsApproved("new os.File string"))
	assert.Equal(t, []string{"new os.File string"}, s.Approved())
}

func TestService_DenyDropsWithoutApproving(t *testing.T) {
	s, err := NewService()
	require.NoError(t, err)
	require.NoError(t, s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{}))

	require.NoError(t, s.Deny("new os.File string"))

	assert.Empty(t, s.Pending())
	assert.False(t, s.IsApproved("new os.File string"))

	// A denied signature may be registered again later.
	require.NoError(t, s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{}))
	assert.Len(t, s.Pending(), 1)
}

func TestService_ClearKeepsApprovals(t *testing.T) {
	s, err := NewService()
	require.NoError(t, err)
	require.NoError(t, s.Approve("method os/exec.Cmd Run"))
	require.NoError(t, s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{}))

	require.NoError(t, s.Clear())

	assert.Empty(t, s.Pending())
	assert.True(t, s.IsApproved("method os/exec.Cmd Run"))
}

func TestService_LoadsPersistedState(t *testing.T) {
	store := &memoryStore{state: entities.ApprovalState{
		Pending:  []entities.PendingSignature{{Signature: "field os/exec.Cmd Env"}},
		Approved: []string{"method os/exec.Cmd Run"},
	}}

	s, err := NewService(WithStore(store))
	require.NoError(t, err)

	assert.True(t, s.IsApproved("method os/exec.Cmd Run"))
	require.Len(t, s.Pending(), 1)
	assert.Equal(t, "field os/exec.Cmd Env", s.Pending()[0].Signature)
}

func TestService_LoadFailureSurfaces(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("corrupt")}

	_, err := NewService(WithStore(store))
	assert.Error(t, err)
}

func TestService_PersistsOnEveryMutation(t *testing.T) {
	store := &memoryStore{}
	s, err := NewService(WithStore(store))
	require.NoError(t, err)

	require.NoError(t, s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{}))
	require.NoError(t, s.Approve("new os.File string"))
	require.NoError(t, s.Clear())

	assert.Equal(t, 3, store.saves)
	assert.Equal(t, []string{"new os.File string"}, store.state.Approved)
}

func TestService_SaveFailureSurfacesFromRegister(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("disk full")}
	s, err := NewService(WithStore(store))
	require.NoError(t, err)

	err = s.Register(rejectionFor("new os.File string"), entities.ApprovalContext{})
	assert.Error(t, err)
}
