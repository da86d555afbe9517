package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prolync/internal/models"
)

type fakeProblemRepo struct {
	problems    map[int]*models.Problem
	submissions []*models.Submission
}

func (f *fakeProblemRepo) List(difficulty, topic string) ([]*models.Problem, error) {
	var out []*models.Problem
	for _, p := range f.problems {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProblemRepo) GetByID(id int) (*models.Problem, error) {
	return f.problems[id], nil
}

func (f *fakeProblemRepo) CreateSubmission(s *models.Submission) error {
	s.ID = len(f.submissions) + 1
	f.submissions = append(f.submissions, s)
	return nil
}

func (f *fakeProblemRepo) ListSubmissions(userID, problemID int) ([]*models.Submission, error) {
	return f.submissions, nil
}

// scripted executor: answers per stdin
type fakeExecutor struct {
	outputs map[string]string // stdin -> stdout
	status  string
	err     error
}

func (f *fakeExecutor) Run(language, sourceCode, stdin string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	status := f.status
	if status == "" {
		status = "Accepted"
	}
	return status, f.outputs[stdin], nil
}

func twoCaseProblem() *models.Problem {
	return &models.Problem{
		ID:        1,
		Title:     "Sum of Two",
		TestCases: `[{"input":"1 2","expected":"3"},{"input":"5 7","expected":"12"}]`,
	}
}

func newTestCodingService(p *models.Problem, exec Executor) (CodingService, *fakeProblemRepo, *fakeActivity) {
	repo := &fakeProblemRepo{problems: map[int]*models.Problem{}}
	if p != nil {
		repo.problems[p.ID] = p
	}
	activity := &fakeActivity{}
	return NewCodingService(repo, exec, activity), repo, activity
}

func TestSubmitAllCasesPass(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{"1 2": "3\n", "5 7": "12"}}
	svc, repo, activity := newTestCodingService(twoCaseProblem(), exec)

	sub, err := svc.Submit(7, 1, "python", "print(sum(map(int, input().split())))")
	require.NoError(t, err)

	// trailing whitespace in stdout does not fail a case
	assert.Equal(t, "Accepted", sub.Verdict)
	assert.Equal(t, 2, sub.PassedCases)
	assert.Equal(t, 2, sub.TotalCases)
	require.Len(t, repo.submissions, 1)
	assert.Contains(t, activity.actions, "SUBMIT_SOLUTION")
}

func TestSubmitPartialFailure(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{"1 2": "3", "5 7": "13"}}
	svc, _, _ := newTestCodingService(twoCaseProblem(), exec)

	sub, err := svc.Submit(7, 1, "python", "src")
	require.NoError(t, err)
	assert.Equal(t, "Wrong Answer", sub.Verdict)
	assert.Equal(t, 1, sub.PassedCases)
}

func TestSubmitNonAcceptedStatusFailsCase(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{"1 2": "3", "5 7": "12"}, status: "Runtime Error"}
	svc, _, _ := newTestCodingService(twoCaseProblem(), exec)

	sub, err := svc.Submit(7, 1, "python", "src")
	require.NoError(t, err)
	assert.Equal(t, "Wrong Answer", sub.Verdict)
	assert.Equal(t, 0, sub.PassedCases)
}

func TestSubmitExecutionErrorCountsAsFailedCase(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("judge unreachable")}
	svc, repo, _ := newTestCodingService(twoCaseProblem(), exec)

	// the submission is still recorded; the broken runs just score zero
	sub, err := svc.Submit(7, 1, "python", "src")
	require.NoError(t, err)
	assert.Equal(t, "Wrong Answer", sub.Verdict)
	assert.Equal(t, 0, sub.PassedCases)
	assert.Len(t, repo.submissions, 1)
}

func TestSubmitRejectsProblemWithoutCases(t *testing.T) {
	empty := &models.Problem{ID: 1, Title: "Unfinished", TestCases: `[]`}
	svc, repo, _ := newTestCodingService(empty, &fakeExecutor{})

	// an empty case list must never score as a pass
	_, err := svc.Submit(7, 1, "python", "src")
	assert.ErrorIs(t, err, ErrNoTestCases)
	assert.Empty(t, repo.submissions)
}

func TestSubmitUnknownProblem(t *testing.T) {
	svc, _, _ := newTestCodingService(nil, &fakeExecutor{})
	_, err := svc.Submit(7, 99, "python", "src")
	assert.ErrorIs(t, err, ErrProblemNotFound)
}
