package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/repository/repoargs"
	"github.com/ralexrdz/opencollective-api/internal/service/mocks"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/tokens"
	"github.com/ralexrdz/opencollective-api/pkg/uow"
	uowmocks "github.com/ralexrdz/opencollective-api/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	mockCollRepo *mocks.MockCollectiveRepository
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockCollRepo = mocks.NewMockCollectiveRepository(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestLogin() {
	savedEmail := "test@example.com"
	validPassword := "<PASSWORD>"

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(validPassword), bcrypt.MinCost)
	s.Require().NoError(hashErr)

	// аргументы вызовов для кейсов ниже.
	argsOk := LoginUserArgs{Email: savedEmail, Password: validPassword}
	argsWrongEmail := LoginUserArgs{Email: "wrong@example.com", Password: validPassword}
	argsWrongPass := LoginUserArgs{Email: savedEmail, Password: "wrong pass"}

	savedUser := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Email:             savedEmail,
		EncryptedPassword: string(hash),
		CollectiveID:      10,
	}

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), savedEmail).
		Return(&savedUser, nil).Times(2)

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), argsWrongEmail.Email).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "wrong email", args: argsWrongEmail, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(context.Background(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(user)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).ID, savedUser.ID) //nolint:errcheck
			}
		})
	}
}

func (s *UserServiceTestSuite) TestPersonalSlug() {
	cases := []struct {
		email string
		want  string
	}{
		{email: "valid@example.com", want: "user-valid"},
		{email: "first.last@example.com", want: "user-first-last"},
		// Плюс, подчеркивание и прочая экзотика тоже превращаются в дефисы.
		{email: "john_doe+tag@example.com", want: "user-john-doe-tag"},
		{email: "UPPER.Case@example.com", want: "user-upper-case"},
	}
	for _, t := range cases {
		s.Equal(t.want, personalSlug(t.email))
	}
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{
		Email:    "valid@example.com",
		Password: "<PASSWORD>",
		Name:     "Valid User",
		Currency: "USD",
	}
	argsDuplicateEmail := RegisterUserArgs{
		Email:    "duplicate@example.com",
		Password: "<PASSWORD>",
		Name:     "Duplicate User",
		Currency: "USD",
	}

	personalOk := domain.Collective{
		ID:       10,
		Slug:     "user-valid",
		Name:     argsOk.Name,
		Type:     domain.CollectiveTypeUser,
		Currency: argsOk.Currency,
	}
	personalDup := domain.Collective{
		ID:       11,
		Slug:     "user-duplicate",
		Name:     argsDuplicateEmail.Name,
		Type:     domain.CollectiveTypeUser,
		Currency: argsDuplicateEmail.Currency,
	}

	createdUser := domain.User{
		ID:           1,
		Email:        argsOk.Email,
		CollectiveID: personalOk.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Мок транзакции uow.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CollectiveRepoName)).
		Return(s.mockCollRepo, nil).MinTimes(1)
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).MinTimes(1)

	// Персональный аккаунт создается из локальной части email.
	s.mockCollRepo.EXPECT().
		CreateCollective(gomock.Any(), repoargs.CreateCollective{
			Slug:     "user-valid",
			Name:     argsOk.Name,
			Type:     domain.CollectiveTypeUser,
			Currency: argsOk.Currency,
		}).
		Return(&personalOk, nil)
	s.mockCollRepo.EXPECT().
		CreateCollective(gomock.Any(), repoargs.CreateCollective{
			Slug:     "user-duplicate",
			Name:     argsDuplicateEmail.Name,
			Type:     domain.CollectiveTypeUser,
			Currency: argsDuplicateEmail.Currency,
		}).
		Return(&personalDup, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.AssignableToTypeOf(repoargs.CreateUser{})).
		DoAndReturn(func(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
			if args.Email == argsDuplicateEmail.Email {
				return nil, domain.ErrDuplicateKey
			}
			s.Equal(personalOk.ID, args.CollectiveID)
			s.NotEmpty(args.Password)
			return &createdUser, nil
		}).Times(2)

	// Мок uow.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	cases := []struct {
		name      string
		args      RegisterUserArgs
		wantErr   error
		wantUser  *domain.User
		wantToken bool
	}{
		{
			name:      "ok",
			args:      argsOk,
			wantUser:  &createdUser,
			wantToken: true,
		},
		{
			name:    "duplicate email",
			args:    argsDuplicateEmail,
			wantErr: domain.ErrDuplicateKey,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Register(context.Background(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)

			if t.wantToken {
				s.Require().NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).ID, user.ID) //nolint:errcheck
			} else {
				s.Empty(tokenStr)
			}
		})
	}
}
