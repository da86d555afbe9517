package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

var (
	ErrProblemNotFound = errors.New("problem not found")
	ErrNoTestCases     = errors.New("problem has no test cases")
)

// Executor is the outbound code-execution API. The backend never runs user
// code itself.
type Executor interface {
	Run(language, sourceCode, stdin string) (status, stdout string, err error)
}

type testCase struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
}

type CodingService interface {
	ListProblems(difficulty, topic string) ([]*models.Problem, error)
	GetProblem(id int) (*models.Problem, error)
	Submit(userID, problemID int, language, sourceCode string) (*models.Submission, error)
	Submissions(userID, problemID int) ([]*models.Submission, error)
}

type codingService struct {
	problems repositories.ProblemRepository
	executor Executor
	activity ActivityService
}

func NewCodingService(problems repositories.ProblemRepository, executor Executor, activity ActivityService) CodingService {
	return &codingService{problems: problems, executor: executor, activity: activity}
}

func (s *codingService) ListProblems(difficulty, topic string) ([]*models.Problem, error) {
	return s.problems.List(difficulty, topic)
}

func (s *codingService) GetProblem(id int) (*models.Problem, error) {
	p, err := s.problems.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProblemNotFound
	}
	return p, nil
}

// Submit runs the source against every stored test case and records the
// verdict. Execution errors on a single case count as a failed case, not a
// failed submission.
func (s *codingService) Submit(userID, problemID int, language, sourceCode string) (*models.Submission, error) {
	problem, err := s.problems.GetByID(problemID)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, ErrProblemNotFound
	}

	var cases []testCase
	if err := json.Unmarshal([]byte(problem.TestCases), &cases); err != nil {
		return nil, fmt.Errorf("decode test cases for problem %d: %w", problemID, err)
	}
	// a problem with nothing to run against cannot be judged; without this
	// check an empty case list would pass with 0 of 0
	if len(cases) == 0 {
		return nil, ErrNoTestCases
	}

	passed := 0
	for i, tc := range cases {
		status, stdout, err := s.executor.Run(language, sourceCode, tc.Input)
		if err != nil {
			log.Printf("[coding][submit] case %d execution failed problem_id=%d: %v", i, problemID, err)
			continue
		}
		if status == "Accepted" && strings.TrimSpace(stdout) == strings.TrimSpace(tc.Expected) {
			passed++
		}
	}

	verdict := "Wrong Answer"
	if passed == len(cases) {
		verdict = "Accepted"
	}

	sub := &models.Submission{
		UserID:      userID,
		ProblemID:   problemID,
		Language:    language,
		SourceCode:  sourceCode,
		Verdict:     verdict,
		PassedCases: passed,
		TotalCases:  len(cases),
	}
	if err := s.problems.CreateSubmission(sub); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Log(userID, "SUBMIT_SOLUTION", fmt.Sprintf("%s on %q (%d/%d)", verdict, problem.Title, passed, len(cases)), "")
	}
	return sub, nil
}

func (s *codingService) Submissions(userID, problemID int) ([]*models.Submission, error) {
	return s.problems.ListSubmissions(userID, problemID)
}
