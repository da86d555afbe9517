package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prolync/internal/models"
)

func newTestOTPService() (*otpService, *fakeOTPRepo, *fakeUserRepo, *fakeEmailService) {
	repo := newFakeOTPRepo()
	users := newFakeUserRepo()
	emails := &fakeEmailService{}
	svc := &otpService{repo: repo, userRepo: users, emails: emails, now: time.Now}
	return svc, repo, users, emails
}

func TestRequestSignupOTPRejectsRegisteredEmail(t *testing.T) {
	svc, _, users, emails := newTestOTPService()
	require.NoError(t, users.Create(&models.User{Name: "A", Email: "a@x.io"}))

	err := svc.RequestSignupOTP("a@x.io")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Empty(t, emails.otpSent)
}

func TestRequestSignupOTPCooldown(t *testing.T) {
	svc, repo, _, emails := newTestOTPService()

	require.NoError(t, svc.RequestSignupOTP("new@x.io"))
	assert.Len(t, emails.otpSent, 1)

	// immediate resend sits inside the 60s window
	err := svc.RequestSignupOTP("new@x.io")
	assert.ErrorIs(t, err, ErrOTPThrottled)
	assert.Len(t, emails.otpSent, 1)

	// age the stored row past the cooldown
	repo.byEmail["new@x.io"].CreatedAt = time.Now().Add(-61 * time.Second)
	require.NoError(t, svc.RequestSignupOTP("new@x.io"))
	assert.Len(t, emails.otpSent, 2)
}

func TestRequestSignupOTPSupersedesOldCode(t *testing.T) {
	svc, repo, _, emails := newTestOTPService()

	require.NoError(t, svc.RequestSignupOTP("new@x.io"))
	first := emails.lastCode

	repo.byEmail["new@x.io"].CreatedAt = time.Now().Add(-2 * time.Minute)
	require.NoError(t, svc.RequestSignupOTP("new@x.io"))

	// one live code per address: only the latest verifies
	if first != emails.lastCode {
		assert.ErrorIs(t, svc.Verify("new@x.io", first), ErrOTPMismatch)
	}
	assert.NoError(t, svc.Verify("new@x.io", emails.lastCode))
}

func TestIssueLeavesRowOnSendFailure(t *testing.T) {
	svc, repo, _, emails := newTestOTPService()
	emails.failSend = true

	err := svc.RequestSignupOTP("new@x.io")
	assert.Error(t, err)
	assert.NotNil(t, repo.byEmail["new@x.io"], "stored code survives a failed delivery")
}

func TestVerifyErrorOrder(t *testing.T) {
	svc, repo, _, emails := newTestOTPService()

	assert.ErrorIs(t, svc.Verify("ghost@x.io", "123456"), ErrOTPNotFound)

	require.NoError(t, svc.RequestSignupOTP("new@x.io"))
	assert.ErrorIs(t, svc.Verify("new@x.io", "000000x"), ErrOTPMismatch)

	repo.byEmail["new@x.io"].ExpiresAt = time.Now().Add(-time.Second)
	// expiry wins over mismatch once the row is stale
	assert.ErrorIs(t, svc.Verify("new@x.io", emails.lastCode), ErrOTPExpired)
	assert.ErrorIs(t, svc.Verify("new@x.io", "wrong"), ErrOTPExpired)
}

func TestVerifyIsSingleUseAfterConsume(t *testing.T) {
	svc, _, _, emails := newTestOTPService()

	require.NoError(t, svc.RequestSignupOTP("new@x.io"))
	code := emails.lastCode

	require.NoError(t, svc.Verify("new@x.io", code))
	require.NoError(t, svc.Consume("new@x.io"))
	assert.ErrorIs(t, svc.Verify("new@x.io", code), ErrOTPNotFound)
}

func TestVerifyExact(t *testing.T) {
	svc, repo, _, emails := newTestOTPService()

	require.NoError(t, svc.RequestResetOTP("a@x.io"))
	assert.NoError(t, svc.VerifyExact("a@x.io", emails.lastCode))
	assert.ErrorIs(t, svc.VerifyExact("a@x.io", "nope"), ErrOTPMismatch)

	// expired and missing collapse into the same answer on this path
	repo.byEmail["a@x.io"].ExpiresAt = time.Now().Add(-time.Second)
	assert.ErrorIs(t, svc.VerifyExact("a@x.io", emails.lastCode), ErrOTPMismatch)
}

func TestGeneratedCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := generateCode()
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9')
		}
	}
}
