package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	got, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if got != pos {
		t.Error("GetComponent should return the same pointer")
	}

	// 未添加的组件类型
	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity component should not be found")
	}

	// 不存在的实体
	if _, found := GetComponent[*testPositionComponent](em, 999); found {
		t.Error("Component of unknown entity should not be found")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testPositionComponent{})

	if HasComponent[*testPositionComponent](em, 42) {
		t.Error("AddComponent on unknown entity should be ignored")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	RemoveComponent[*testPositionComponent](em, id)

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPositionComponent{})
	em.AddComponent(both, &testVelocityComponent{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &testPositionComponent{})

	em.CreateEntity() // 无组件

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if len(withPos) != 2 || withPos[0] != both || withPos[1] != posOnly {
		t.Errorf("GetEntitiesWith1 = %v, want [%d %d]", withPos, both, posOnly)
	}

	withBoth := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(withBoth) != 1 || withBoth[0] != both {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", withBoth, both)
	}
}
