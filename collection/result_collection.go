package collection

import "sync"

// Result accumulates published image identifiers from concurrent image and
// region tasks. Accessors return deep copies so callers never share the
// internal maps.
type Result struct {
	sync.Mutex
	byName  map[string]map[string]string
	byGroup map[string]map[string]map[string]string
}

// AddImage records the identifier for an image in one region
func (r *Result) AddImage(name string, region string, imageID string) {
	r.Lock()
	defer r.Unlock()

	if r.byName == nil {
		r.byName = map[string]map[string]string{}
	}
	if r.byName[name] == nil {
		r.byName[name] = map[string]string{}
	}
	r.byName[name][region] = imageID
}

// AddGroupImage records the identifier under the group-indexed view
func (r *Result) AddGroupImage(group string, name string, region string, imageID string) {
	r.Lock()
	defer r.Unlock()

	if r.byGroup == nil {
		r.byGroup = map[string]map[string]map[string]string{}
	}
	if r.byGroup[group] == nil {
		r.byGroup[group] = map[string]map[string]string{}
	}
	if r.byGroup[group][name] == nil {
		r.byGroup[group][name] = map[string]string{}
	}
	r.byGroup[group][name][region] = imageID
}

// ByName returns the images grouped by image name, then region
func (r *Result) ByName() map[string]map[string]string {
	r.Lock()
	defer r.Unlock()

	out := map[string]map[string]string{}
	for name, regions := range r.byName {
		out[name] = map[string]string{}
		for region, id := range regions {
			out[name][region] = id
		}
	}
	return out
}

// ByGroup returns the images grouped by group name, then image name, then
// region
func (r *Result) ByGroup() map[string]map[string]map[string]string {
	r.Lock()
	defer r.Unlock()

	out := map[string]map[string]map[string]string{}
	for group, names := range r.byGroup {
		out[group] = map[string]map[string]string{}
		for name, regions := range names {
			out[group][name] = map[string]string{}
			for region, id := range regions {
				out[group][name][region] = id
			}
		}
	}
	return out
}
