package appctx

import "github.com/samber/lo"

// dependencyOrder returns the descriptors sorted so that every bean follows its
// dependencies. The traversal starts from each descriptor in declaration order, so
// independent beans keep their relative order.
func dependencyOrder(descs []BeanDescriptor) ([]BeanDescriptor, error) {
	byID := make(map[string]BeanDescriptor, len(descs))
	for _, d := range descs {
		if _, exists := byID[d.ID]; exists {
			return nil, &DuplicateBeanIDError{ID: d.ID}
		}
		byID[d.ID] = d
	}

	visited := make(map[string]bool) // fully processed
	onPath := make(map[string]bool)  // nodes in the current recursion stack
	path := make([]string, 0, 16)
	order := make([]BeanDescriptor, 0, len(descs))

	var visit func(id string) error
	visit = func(id string) error {
		if visited[id] {
			return nil
		}
		if onPath[id] {
			cycle := append([]string(nil), path[lo.IndexOf(path, id):]...)
			return &CyclicDependencyError{Path: append(cycle, id)}
		}

		onPath[id] = true
		path = append(path, id)

		d := byID[id]
		for _, depID := range d.DependencyIDs {
			if _, ok := byID[depID]; !ok {
				return &UnresolvedDependencyError{BeanID: id, MissingID: depID}
			}
			if err := visit(depID); err != nil {
				return err
			}
		}

		onPath[id] = false
		path = path[:len(path)-1]
		visited[id] = true
		order = append(order, d)
		return nil
	}

	for _, d := range descs {
		if err := visit(d.ID); err != nil {
			return nil, err
		}
	}
	return order, nil
}
