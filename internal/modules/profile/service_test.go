package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"timebank/internal/domain"
	"timebank/internal/pkg/session"
	"timebank/internal/timebank"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Profile(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAPI) UpdateProfile(ctx context.Context, patch timebank.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(api *MockAPI) (*Service, *session.Session) {
	return NewService(func(token string) API { return api }),
		&session.Session{UserID: 5, APIToken: "t"}
}

func TestUpdate_ParsesInterests(t *testing.T) {
	api := new(MockAPI)
	svc, sess := newTestService(api)

	api.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p timebank.ProfileUpdate) bool {
		return p.Interests != nil &&
			assert.ObjectsAreEqual([]string{"music", "sports", "reading"}, *p.Interests)
	})).Return(&domain.User{ID: 5}, nil)

	interests := "music, sports,  , reading"
	_, err := svc.Update(context.Background(), sess, UpdateRequest{Interests: &interests})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestUpdate_ClearingInterestsSendsEmptyList(t *testing.T) {
	api := new(MockAPI)
	svc, sess := newTestService(api)

	api.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p timebank.ProfileUpdate) bool {
		return p.Interests != nil && len(*p.Interests) == 0
	})).Return(&domain.User{ID: 5}, nil)

	empty := ""
	_, err := svc.Update(context.Background(), sess, UpdateRequest{Interests: &empty})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestUpdate_RejectsBlankNameAndBadZip(t *testing.T) {
	api := new(MockAPI)
	svc, sess := newTestService(api)

	blank := "  "
	zip := "123"
	_, err := svc.Update(context.Background(), sess, UpdateRequest{FirstName: &blank, ZipCode: &zip})

	var formErr *FormError
	require.ErrorAs(t, err, &formErr)
	assert.Len(t, formErr.Errors, 2)
	api.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestGet_Delegates(t *testing.T) {
	api := new(MockAPI)
	svc, sess := newTestService(api)

	api.On("Profile", mock.Anything).Return(&domain.User{ID: 5, Username: "amina"}, nil)

	user, err := svc.Get(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, "amina", user.Username)
}
