package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	data, err := CSV(
		[]string{"id_enrollment", "status"},
		[][]string{
			{"e-1", "ACTIVE"},
			{"e-2", "COMPLETED"},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "id_enrollment,status\ne-1,ACTIVE\ne-2,COMPLETED\n", string(data))
}

func TestCSVRejectsEmptyHeaders(t *testing.T) {
	_, err := CSV(nil, nil)
	require.Error(t, err)
}

func TestCSVRejectsRaggedRows(t *testing.T) {
	_, err := CSV([]string{"a", "b"}, [][]string{{"only one"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestCertificatePDF(t *testing.T) {
	data, err := CertificatePDF(CertificateData{
		SerialNumber: "CERT-2026-0001",
		CourseTitle:  "Distributed Systems",
		StudentName:  "student-1",
		IssuedAt:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCertificatePDFRequiresSerial(t *testing.T) {
	_, err := CertificatePDF(CertificateData{CourseTitle: "Algorithms"})
	require.Error(t, err)
}
