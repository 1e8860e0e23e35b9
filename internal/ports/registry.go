package ports

// ElementRegistryPort answers whether a custom element is registered in the
// host UI, and with which version when the host reports one.
type ElementRegistryPort interface {
	Lookup(tag string) (version string, ok bool)
}

// RegistrySourcePort opens a registry snapshot.
type RegistrySourcePort interface {
	LoadRegistry(path string) (ElementRegistryPort, error)
}
