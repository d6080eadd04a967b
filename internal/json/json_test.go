package json

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JSONSuite struct {
	suite.Suite
}

func (s *JSONSuite) TestRoundTrip() {
	type pair struct {
		Key   string `json:"key"`
		Value int    `json:"value"`
	}

	src := pair{Key: "answer", Value: 42}
	data, err := Marshal(src)
	s.NoError(err)
	s.Equal(`{"key":"answer","value":42}`, string(data))

	var dst pair
	s.NoError(Unmarshal(data, &dst))
	s.Equal(src, dst)
}

func (s *JSONSuite) TestMarshalIndent() {
	data, err := MarshalIndent(map[string]int{"a": 1}, "", "  ")
	s.NoError(err)
	s.Equal("{\n  \"a\": 1\n}", string(data))
}

func (s *JSONSuite) TestMarshalFast() {
	data, err := MarshalFast([]int{1, 2, 3})
	s.NoError(err)

	var dst []int
	s.NoError(UnmarshalFast(data, &dst))
	s.Equal([]int{1, 2, 3}, dst)
}

func (s *JSONSuite) TestMarshalError() {
	_, err := Marshal(make(chan int))
	s.Error(err)
}

func (s *JSONSuite) TestAPI() {
	s.NotNil(API())
}

func TestJSON(t *testing.T) {
	suite.Run(t, new(JSONSuite))
}
