package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prolync/internal/models"
	"prolync/internal/pdf"
)

type fakeCourseRepo struct {
	courses map[int]*models.Course
}

func (f *fakeCourseRepo) List(filter models.CourseFilter) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (f *fakeCourseRepo) GetByID(id int) (*models.Course, error)                    { return f.courses[id], nil }
func (f *fakeCourseRepo) Create(c *models.Course) error                             { return nil }
func (f *fakeCourseRepo) Update(c *models.Course) error                             { return nil }
func (f *fakeCourseRepo) Delete(id int) error                                       { return nil }
func (f *fakeCourseRepo) GetCount() (int, error)                                    { return len(f.courses), nil }
func (f *fakeCourseRepo) Distribution() ([]*models.CourseDistribution, error)       { return nil, nil }

type fakeCertRepo struct {
	byCode map[string]*models.Certificate
}

func (f *fakeCertRepo) Create(c *models.Certificate) error {
	c.ID = len(f.byCode) + 1
	f.byCode[c.Code] = c
	return nil
}

func (f *fakeCertRepo) GetByCode(code string) (*models.Certificate, error) {
	return f.byCode[code], nil
}

type fakeCertGenerator struct {
	rendered []pdf.CertificateData
}

func (f *fakeCertGenerator) GenerateCertificate(data pdf.CertificateData) (string, error) {
	f.rendered = append(f.rendered, data)
	return "/certificate_" + data.Code + ".pdf", nil
}

func TestIssueCertificate(t *testing.T) {
	users := newFakeUserRepo()
	u := &models.User{Name: "Asel", Email: "asel@x.io"}
	require.NoError(t, users.Create(u))

	courses := &fakeCourseRepo{courses: map[int]*models.Course{3: {ID: 3, Title: "Go Basics"}}}
	certs := &fakeCertRepo{byCode: map[string]*models.Certificate{}}
	gen := &fakeCertGenerator{}
	activity := &fakeActivity{}

	svc := NewCertificateService(certs, users, courses, gen, activity)

	cert, err := svc.Issue(u.ID, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, cert.Code)
	assert.Equal(t, "Asel", cert.UserName)
	assert.Equal(t, "Go Basics", cert.CourseTitle)
	assert.Equal(t, "/certificate_"+cert.Code+".pdf", cert.FilePath)
	require.Len(t, gen.rendered, 1)
	assert.Equal(t, cert.Code, gen.rendered[0].Code)
	assert.Contains(t, activity.actions, "EARN_CERTIFICATE")

	// codes are unique per issue
	again, err := svc.Issue(u.ID, 3)
	require.NoError(t, err)
	assert.NotEqual(t, cert.Code, again.Code)

	found, err := svc.Verify(cert.Code)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, found.ID)

	_, err = svc.Verify("nope")
	assert.ErrorIs(t, err, ErrCertificateNotFound)
}

func TestIssueCertificateUnknownTargets(t *testing.T) {
	users := newFakeUserRepo()
	courses := &fakeCourseRepo{courses: map[int]*models.Course{}}
	svc := NewCertificateService(&fakeCertRepo{byCode: map[string]*models.Certificate{}}, users, courses, &fakeCertGenerator{}, nil)

	_, err := svc.Issue(99, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	u := &models.User{Name: "A", Email: "a@x.io"}
	require.NoError(t, users.Create(u))
	_, err = svc.Issue(u.ID, 42)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
