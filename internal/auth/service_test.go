package auth

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/finance-tracker/internal"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users  map[string]*User // username -> user
	hashes map[string]string
	nextID int64

	returnError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  map[string]*User{},
		hashes: map[string]string{},
		nextID: 1,
	}
}

func (m *mockUserRepository) CreateUser(username, passwordHash string) (*User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	if _, exists := m.users[username]; exists {
		return nil, internal.ErrDuplicateUsername
	}
	u := &User{ID: m.nextID, Username: username, CreatedAt: time.Now()}
	m.nextID++
	m.users[username] = u
	m.hashes[username] = passwordHash
	return u, nil
}

func (m *mockUserRepository) GetPasswordForUsername(username string) (string, int64, error) {
	if m.returnError != nil {
		return "", 0, m.returnError
	}
	u, exists := m.users[username]
	if !exists {
		return "", 0, internal.ErrUserNotFound
	}
	return m.hashes[username], u.ID, nil
}

func (m *mockUserRepository) GetUserByID(userID int64) (*User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
		secret   = "test-secret-test-secret-test-secret!"
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(secret, time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, slog.Default())
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("persists a salted hash, never the plaintext", func() {
			_, err := service.Register(SignupDTO{Username: "alice", Password: "pw1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			hash := mockRepo.hashes["alice"]
			gomega.Expect(hash).ToNot(gomega.BeEmpty())
			gomega.Expect(hash).ToNot(gomega.Equal("pw1"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1"))).To(gomega.Succeed())
		})

		ginkgo.It("returns a token valid for the new user", func() {
			tokens, err := service.Register(SignupDTO{Username: "alice", Password: "pw1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			uid, err := claims.SubjectID()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(uid).To(gomega.Equal(mockRepo.users["alice"].ID))
		})

		ginkgo.It("rejects a taken username", func() {
			_, err := service.Register(SignupDTO{Username: "alice", Password: "pw1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Register(SignupDTO{Username: "alice", Password: "other"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrDuplicateUsername))
		})

		ginkgo.It("rejects missing fields before touching the store", func() {
			_, err := service.Register(SignupDTO{Username: "", Password: "pw1"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrMissingField))

			_, err = service.Register(SignupDTO{Username: "alice", Password: ""})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrMissingField))
			gomega.Expect(mockRepo.users).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Register(SignupDTO{Username: "alice", Password: "pw1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("succeeds with the credentials used at registration", func() {
			tokens, err := service.Authenticate(LoginDTO{Username: "alice", Password: "pw1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			uid, err := claims.SubjectID()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(uid).To(gomega.Equal(mockRepo.users["alice"].ID))
		})

		ginkgo.It("returns the same error for a wrong password and an unknown user", func() {
			_, wrongPassErr := service.Authenticate(LoginDTO{Username: "alice", Password: "nope"})
			_, unknownUserErr := service.Authenticate(LoginDTO{Username: "bob", Password: "pw1"})

			gomega.Expect(wrongPassErr).To(gomega.MatchError(internal.ErrInvalidCredentials))
			gomega.Expect(unknownUserErr).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("rejects missing fields", func() {
			_, err := service.Authenticate(LoginDTO{Username: "alice"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrMissingField))
		})

		ginkgo.It("surfaces a store fault instead of masking it as bad credentials", func() {
			mockRepo.returnError = internal.NewStoreError("db down", nil)

			_, err := service.Authenticate(LoginDTO{Username: "alice", Password: "pw1"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeStoreFailure))
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(http.StatusInternalServerError))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("rejects a token signed with a different secret", func() {
			otherGen := NewJWTTokenGenerator("another-secret-another-secret-other!", time.Hour)
			token, _, err := otherGen.GenerateAccessToken(1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})

		ginkgo.It("rejects a token past its expiry", func() {
			expiredGen := NewJWTTokenGenerator(secret, -time.Second)
			token, _, err := expiredGen.GenerateAccessToken(1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrTokenExpired))
		})

		ginkgo.It("rejects garbage", func() {
			_, err := service.ValidateAccessToken("not-a-jwt")
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})
	})
})
