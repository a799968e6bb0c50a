package abiview

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReaderWordTestSuite struct {
	suite.Suite
}

func (s *ReaderWordTestSuite) TestReadUintWidths() {
	v8, e := ReadUint8(word(0xAB), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(0xAB, v8.Value())

	v16, e := ReadUint16(word(0xAB, 0xCD), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(0xABCD, v16.Value())

	v32, e := ReadUint32(word(0x01, 0x02, 0x03, 0x04), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(0x01020304, v32.Value())

	v64, e := ReadUint64(beWord32(0x0102030405060708), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(0x0102030405060708, v64.Value())
}

func (s *ReaderWordTestSuite) TestReadUintOverflow() {
	_, e := ReadUint8(word(0x01, 0x00), 0)
	s.Assert().ErrorIs(e, ErrIntegerOverflow)
}

func (s *ReaderWordTestSuite) TestReadIntWidths() {
	v8, e := ReadInt8(wordSigned(0xFF), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(-1, v8.Value())

	v16, e := ReadInt16(wordSigned(0x01, 0x00), 0)
	s.Require().NoError(e)
	s.Assert().EqualValues(0x0100, v16.Value())
}

func (s *ReaderWordTestSuite) TestReadIntOverflow() {
	raw := wordSigned(0x01) // sign-extended for int8(1)
	raw[0] = 0x00           // the positive low byte needs every high byte to be 0x00...
	raw[1] = 0xFF           // ...so one 0xFF high byte breaks the extension
	_, e := ReadInt8(raw, 0)
	s.Assert().ErrorIs(e, ErrIntegerOverflow)
}

func (s *ReaderWordTestSuite) TestReadWordOutOfBounds() {
	_, e := ReadUint256(make([]byte, 10), 0)
	s.Assert().ErrorIs(e, ErrOutOfBounds)
}

func TestReaderWordSuite(t *testing.T) {
	suite.Run(t, new(ReaderWordTestSuite))
}
