// Package mocks contains gomock doubles for the collectivity capabilities.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"go.llib.dev/collectivity"
)

var (
	_ collectivity.Get[string, int]    = (*MockGet[string, int])(nil)
	_ collectivity.Insert[string, int] = (*MockInsert[string, int])(nil)
	_ collectivity.Len                 = (*MockLen)(nil)
	_ collectivity.Push[int]           = (*MockPush[int])(nil)
)

// MockGet is a mock of the Get capability.
type MockGet[K, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockGetMockRecorder[K, V]
}

// MockGetMockRecorder is the mock recorder for MockGet.
type MockGetMockRecorder[K, V any] struct {
	mock *MockGet[K, V]
}

func NewMockGet[K, V any](ctrl *gomock.Controller) *MockGet[K, V] {
	mock := &MockGet[K, V]{ctrl: ctrl}
	mock.recorder = &MockGetMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockGet[K, V]) EXPECT() *MockGetMockRecorder[K, V] {
	return m.recorder
}

func (m *MockGet[K, V]) Get(key K) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

func (mr *MockGetMockRecorder[K, V]) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockGet[K, V])(nil).Get), key)
}

// MockInsert is a mock of the Insert capability.
type MockInsert[K, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockInsertMockRecorder[K, V]
}

// MockInsertMockRecorder is the mock recorder for MockInsert.
type MockInsertMockRecorder[K, V any] struct {
	mock *MockInsert[K, V]
}

func NewMockInsert[K, V any](ctrl *gomock.Controller) *MockInsert[K, V] {
	mock := &MockInsert[K, V]{ctrl: ctrl}
	mock.recorder = &MockInsertMockRecorder[K, V]{mock}
	return mock
}

func (m *MockInsert[K, V]) EXPECT() *MockInsertMockRecorder[K, V] {
	return m.recorder
}

func (m *MockInsert[K, V]) Insert(key K, val V) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Insert", key, val)
}

func (mr *MockInsertMockRecorder[K, V]) Insert(key, val any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockInsert[K, V])(nil).Insert), key, val)
}

// MockLen is a mock of the Len capability.
type MockLen struct {
	ctrl     *gomock.Controller
	recorder *MockLenMockRecorder
}

// MockLenMockRecorder is the mock recorder for MockLen.
type MockLenMockRecorder struct {
	mock *MockLen
}

func NewMockLen(ctrl *gomock.Controller) *MockLen {
	mock := &MockLen{ctrl: ctrl}
	mock.recorder = &MockLenMockRecorder{mock}
	return mock
}

func (m *MockLen) EXPECT() *MockLenMockRecorder {
	return m.recorder
}

func (m *MockLen) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockLenMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockLen)(nil).Len))
}

// MockPush is a mock of the Push capability.
type MockPush[V any] struct {
	ctrl     *gomock.Controller
	recorder *MockPushMockRecorder[V]
}

// MockPushMockRecorder is the mock recorder for MockPush.
type MockPushMockRecorder[V any] struct {
	mock *MockPush[V]
}

func NewMockPush[V any](ctrl *gomock.Controller) *MockPush[V] {
	mock := &MockPush[V]{ctrl: ctrl}
	mock.recorder = &MockPushMockRecorder[V]{mock}
	return mock
}

func (m *MockPush[V]) EXPECT() *MockPushMockRecorder[V] {
	return m.recorder
}

func (m *MockPush[V]) Push(val V) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Push", val)
}

func (mr *MockPushMockRecorder[V]) Push(val any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Push", reflect.TypeOf((*MockPush[V])(nil).Push), val)
}
