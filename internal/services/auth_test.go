package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-navigation/internal/models"
	"github.com/sbilibin2017/gw-navigation/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			password: "pass123",
			wantErr:  nil,
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New(), Email: "bob@example.com"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			// a concurrent registration that got past the existence
			// check and hit the unique index on email
			name:      "duplicate insert maps to already exists",
			email:     "dave@example.com",
			password:  "pass123",
			writerErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr:   services.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				userID := uuid.New()
				if tt.writerErr != nil {
					mockWriter.EXPECT().
						Save(gomock.Any(), tt.email, gomock.Any()).
						Return(nil, tt.writerErr)
				} else {
					mockWriter.EXPECT().
						Save(gomock.Any(), tt.email, gomock.Any()).
						Return(&models.UserDB{UserID: userID, Email: tt.email}, nil)
					mockJWT.EXPECT().
						Generate(gomock.Any(), userID, tt.email).
						Return("signed-token", nil)
				}
			}

			user, token, err := svc.Register(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, "signed-token", token)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

	userID := uuid.New()
	var storedHash string

	mockReader.EXPECT().GetByEmail(gomock.Any(), "dan@example.com").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "dan@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, email, passwordHash string) (*models.UserDB, error) {
			storedHash = passwordHash
			return &models.UserDB{UserID: userID, Email: email, PasswordHash: passwordHash}, nil
		})
	mockJWT.EXPECT().Generate(gomock.Any(), userID, "dan@example.com").Return("tok", nil)

	_, _, err := svc.Register(context.Background(), "dan@example.com", "plaintext-secret")
	assert.NoError(t, err)

	// The plaintext never reaches the store; the hash verifies against it.
	assert.NotEqual(t, "plaintext-secret", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("plaintext-secret")))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	storedUser := &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		email    string
		password string
		stored   *models.UserDB
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "correct-password",
			stored:   storedUser,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-password",
			stored:   nil,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			stored:   storedUser,
			wantErr:  services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.stored, nil)
			if tt.wantErr == nil {
				mockJWT.EXPECT().Generate(gomock.Any(), userID, tt.email).Return("signed-token", nil)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, "signed-token", token)
			}
		})
	}
}

func TestAuthService_Login_UniformFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	stored := &models.UserDB{UserID: uuid.New(), Email: "a@example.com", PasswordHash: string(hash)}

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, nil)
	_, _, errUnknown := svc.Login(context.Background(), "missing@example.com", "secret")

	mockReader.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(stored, nil)
	_, _, errWrongPass := svc.Login(context.Background(), "a@example.com", "not-the-secret")

	// Unknown email and wrong password must be indistinguishable.
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthService_PublishesAuthEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Email: "a@example.com", PasswordHash: string(hash)}

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, mockKafka)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(stored, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), userID, "a@example.com").Return("tok", nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := svc.Login(context.Background(), "a@example.com", "secret")
	assert.NoError(t, err)
}

func TestAuthService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "a@example.com"}, nil)

		user, err := svc.GetUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		user, err := svc.GetUser(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
