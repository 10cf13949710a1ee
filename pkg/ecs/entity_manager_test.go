package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testLabelComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLabelComponent{Text: "1. water the beans"})

	label, ok := GetComponent[*testLabelComponent](em, id)
	if !ok || label.Text != "1. water the beans" {
		t.Fatalf("GetComponent returned (%v, %v)", label, ok)
	}

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("entity should not have a position component")
	}

	RemoveComponent[*testLabelComponent](em, id)
	if _, ok := GetComponent[*testLabelComponent](em, id); ok {
		t.Error("label should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("expected 0 entities, got %d", em.EntityCount())
	}
}

// TestGetEntitiesWith_CreationOrder 查询结果按创建顺序返回
func TestGetEntitiesWith_CreationOrder(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testLabelComponent{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testLabelComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("entity %d: expected %d, got %d", i, ids[i], got[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 20 {
		t.Errorf("expected 20 positioned entities, got %d", n)
	}
}
