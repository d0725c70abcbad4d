package delivery

import (
	"github.com/stretchr/testify/mock"

	"github.com/Blackdeer1524/joaat/src/joaat"
)

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindPreimages(target uint32, length int) []string {
	args := m.Called(target, length)
	res, _ := args.Get(0).([]string)

	return res
}

func (m *MockFinder) Alphabet() joaat.Alphabet {
	return m.Called().Get(0).(joaat.Alphabet)
}

func (m *MockFinder) FindWith(target uint32, length int, alphabet joaat.Alphabet) []string {
	args := m.Called(target, length, alphabet)
	res, _ := args.Get(0).([]string)

	return res
}
