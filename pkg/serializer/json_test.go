package serializer

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wilyoctopus/DumpJson/pkg/util/merr"
)

type person struct {
	Name string
	Age  int
}

type JSONSerializerSuite struct {
	suite.Suite
}

func (s *JSONSerializerSuite) TestDefaultOptionsIndented() {
	ser := NewJSON(DefaultOptions())

	data, err := ser.Marshal(person{Name: "John Doe", Age: 30})
	s.NoError(err)
	s.Equal("{\n  \"Name\": \"John Doe\",\n  \"Age\": 30\n}", string(data))
}

func (s *JSONSerializerSuite) TestZeroValueCompact() {
	var ser JSONSerializer

	data, err := ser.Marshal(person{Name: "John Doe", Age: 30})
	s.NoError(err)
	s.Equal(`{"Name":"John Doe","Age":30}`, string(data))
}

func (s *JSONSerializerSuite) TestRoundTrip() {
	ser := NewJSON(DefaultOptions())

	src := person{Name: "John Doe", Age: 30}
	data, err := ser.Marshal(src)
	s.NoError(err)

	var dst person
	s.NoError(ser.Unmarshal(data, &dst))
	s.Equal(src, dst)
}

func (s *JSONSerializerSuite) TestSortMapKeys() {
	ser := NewJSON(Options{SortMapKeys: true})

	data, err := ser.Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	s.NoError(err)
	s.Equal(`{"a":1,"b":2,"c":3}`, string(data))
}

func (s *JSONSerializerSuite) TestNoNullSliceOrMap() {
	type holder struct {
		Items []int
	}

	ser := NewJSON(Options{NoNullSliceOrMap: true})
	data, err := ser.Marshal(holder{})
	s.NoError(err)
	s.Equal(`{"Items":[]}`, string(data))
}

func (s *JSONSerializerSuite) TestMarshalUnsupportedType() {
	ser := NewJSON(DefaultOptions())

	_, err := ser.Marshal(map[string]any{"ch": make(chan int)})
	s.ErrorIs(err, merr.ErrSerializationFailed)
}

func (s *JSONSerializerSuite) TestUnmarshalInvalidInput() {
	ser := NewJSON(DefaultOptions())

	var dst person
	s.ErrorIs(ser.Unmarshal([]byte(`{"Name":`), &dst), merr.ErrSerializationFailed)
}

func (s *JSONSerializerSuite) TestPrefix() {
	ser := NewJSON(Options{Prefix: "\t", Indent: "\t"})

	data, err := ser.Marshal(map[string]int{"a": 1})
	s.NoError(err)
	s.Equal("{\n\t\t\"a\": 1\n\t}", string(data))
}

func TestJSONSerializer(t *testing.T) {
	suite.Run(t, new(JSONSerializerSuite))
}
