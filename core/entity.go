package core

// Entity is an opaque handle grouping zero or more components
// Zero is reserved as the null entity
type Entity uint64

// NullEntity is never returned by World.CreateEntity
const NullEntity Entity = 0
