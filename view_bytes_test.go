package abiview

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BytesViewTestSuite struct {
	suite.Suite
}

func (s *BytesViewTestSuite) TestEqual() {
	buf1 := encodedBytes([]byte("hello"))
	buf2 := encodedBytes([]byte("hello"))
	buf3 := encodedBytes([]byte("world"))

	a, e := ReadBytes(buf1, 0, 0)
	s.Require().NoError(e)
	b, e := ReadBytes(buf2, 0, 0)
	s.Require().NoError(e)
	c, e := ReadBytes(buf3, 0, 0)
	s.Require().NoError(e)

	s.Assert().True(a.Equal(b))
	s.Assert().False(a.Equal(c))
}

func (s *BytesViewTestSuite) TestStringEqual() {
	buf1 := encodedBytes([]byte("hello"))
	buf2 := encodedBytes([]byte("hello"))

	a, e := ReadString(buf1, 0, 0)
	s.Require().NoError(e)
	b, e := ReadString(buf2, 0, 0)
	s.Require().NoError(e)

	s.Assert().True(a.Equal(b))
}

func TestBytesViewSuite(t *testing.T) {
	suite.Run(t, new(BytesViewTestSuite))
}
