package inspection

import (
	"fmt"

	"rentinspect/pkg/types"
)

// AddPhoto appends a photo to the list addressed by target. The photo gets an id
// when it has none.
func AddPhoto(rooms []*types.Room, target types.PhotoTarget, photo types.Photo) ([]*types.Room, error) {
	if photo.ID == "" {
		photo.ID = newID()
	}

	return editPhotos(rooms, target, func(photos []*types.Photo) ([]*types.Photo, error) {
		out := make([]*types.Photo, len(photos), len(photos)+1)
		copy(out, photos)
		return append(out, &photo), nil
	})
}

func RemovePhoto(rooms []*types.Room, target types.PhotoTarget, photoID string) ([]*types.Room, error) {
	return editPhotos(rooms, target, func(photos []*types.Photo) ([]*types.Photo, error) {
		out := make([]*types.Photo, 0, len(photos))
		for _, p := range photos {
			if p.ID != photoID {
				out = append(out, p)
			}
		}
		if len(out) == len(photos) {
			return nil, fmt.Errorf("%w: %s", types.ErrPhotoNotFound, photoID)
		}
		return out, nil
	})
}

func UpdatePhotoComment(rooms []*types.Room, target types.PhotoTarget, photoID, comment string) ([]*types.Room, error) {
	return editPhotos(rooms, target, func(photos []*types.Photo) ([]*types.Photo, error) {
		for i, p := range photos {
			if p.ID != photoID {
				continue
			}
			updated := *p
			updated.Comment = comment

			out := make([]*types.Photo, len(photos))
			copy(out, photos)
			out[i] = &updated
			return out, nil
		}
		return nil, fmt.Errorf("%w: %s", types.ErrPhotoNotFound, photoID)
	})
}

// Photos returns the list addressed by target without copying it.
func Photos(rooms []*types.Room, target types.PhotoTarget) ([]*types.Photo, error) {
	room, ok := FindRoom(rooms, target.RoomID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrRoomNotFound, target.RoomID)
	}

	if target.ApplianceID != "" {
		a, ok := FindAppliance(room, target.ApplianceID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrApplianceNotFound, target.ApplianceID)
		}
		return a.Photos, nil
	}

	topic, err := photoTopic(target.Field)
	if err != nil {
		return nil, err
	}
	return room.Item(topic).Photos, nil
}

func editPhotos(rooms []*types.Room, target types.PhotoTarget, fn func([]*types.Photo) ([]*types.Photo, error)) ([]*types.Room, error) {
	return replaceRoom(rooms, target.RoomID, func(r *types.Room) error {
		if target.ApplianceID != "" {
			return replaceAppliance(r, target.ApplianceID, func(a *types.Appliance) error {
				photos, err := fn(a.Photos)
				if err != nil {
					return err
				}
				a.Photos = photos
				return nil
			})
		}

		topic, err := photoTopic(target.Field)
		if err != nil {
			return err
		}

		item := r.Items[topic]
		photos, err := fn(item.Photos)
		if err != nil {
			return err
		}
		item.Photos = photos
		r.Items[topic] = item

		return nil
	})
}

func photoTopic(field string) (types.Topic, error) {
	topic, attr, ok := types.ParseItemField(field)
	if !ok || attr != types.AttrPhotos {
		return "", fmt.Errorf("%w: %q is not a photo field", types.ErrUnknownField, field)
	}
	return topic, nil
}
