package abiview

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"sigs.k8s.io/yaml"
)

type conformanceCase struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Word    string `json:"word"`
	Want    string `json:"want"`
	WantErr string `json:"wantErr"`
}

type conformanceFile struct {
	Cases []conformanceCase `json:"cases"`
}

// ConformanceTestSuite data-drives the static-word decoders from a YAML
// fixture file rather than inlining every byte pattern into Go source,
// the same separation of test data from test code the teacher's own
// benchmark/data tables favor.
type ConformanceTestSuite struct {
	suite.Suite
	cases []conformanceCase
}

func (s *ConformanceTestSuite) SetupSuite() {
	raw, e := os.ReadFile("testdata/vectors.yaml")
	s.Require().NoError(e)

	var f conformanceFile
	s.Require().NoError(yaml.Unmarshal(raw, &f))
	s.Require().NotEmpty(f.Cases)
	s.cases = f.Cases
}

func (s *ConformanceTestSuite) TestVectors() {
	for _, c := range s.cases {
		c := c
		s.T().Run(c.Name, func(t *testing.T) {
			word, e := hex.DecodeString(c.Word)
			require.NoError(t, e)
			require.Len(t, word, WordSize)

			got, e := decodeConformanceCase(c.Type, word)
			if c.WantErr != "" {
				require.Error(t, e)
				require.Equal(t, c.WantErr, errKindSlug(e))
				return
			}
			require.NoError(t, e)
			require.Equal(t, c.Want, got)
		})
	}
}

func TestConformanceSuite(t *testing.T) {
	suite.Run(t, new(ConformanceTestSuite))
}
