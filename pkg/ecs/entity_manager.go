// Package ecs 提供场景内使用的最小实体-组件存储
//
// 掉落链接、按钮、进度条都以实体形式存放，系统按组件类型查询。
// 查询结果按实体ID升序返回，保证 "先创建的先命中" 这类规则在每一帧都稳定。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID，帧末由 RemoveMarkedEntities 统一清理
	pendingDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:         1,
		components:     make(map[EntityID]map[reflect.Type]any),
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 同一帧内重复标记只删除一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; exists {
		em.pendingDestroy[id] = struct{}{}
	}
}

// IsPendingDestroy 返回实体是否已被标记删除
func (em *EntityManager) IsPendingDestroy(id EntityID) bool {
	_, marked := em.pendingDestroy[id]
	return marked
}

// Exists 返回实体是否存在（已标记但未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for id := range em.pendingDestroy {
		delete(em.components, id)
		delete(em.pendingDestroy, id)
	}
}

// Clear 立即删除全部实体，ID 计数不重置
func (em *EntityManager) Clear() {
	clear(em.components)
	clear(em.pendingDestroy)
}

// Count 返回当前实体数量（包括已标记删除但尚未清理的实体）
func (em *EntityManager) Count() int {
	return len(em.components)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
//
// 参数：
//   - componentTypes: 需要的组件类型列表
//
// 返回：
//   - []EntityID: 满足条件的实体ID，按升序排列
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
