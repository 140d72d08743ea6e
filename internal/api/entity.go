package api

import "smarthome/internal/render"

// Entity describes one lookup route: its path prefix, the URL parameter
// holding the key and the template used for a match.
type Entity struct {
	Name     string
	Param    string
	Template string
}

var (
	EntityUser       = Entity{Name: "sh_user", Param: "sh_id", Template: render.User}
	EntityUserToken  = Entity{Name: "sh_user_token", Param: "sh_user_id", Template: render.UserToken}
	EntityDevice     = Entity{Name: "sh_device", Param: "sh_id", Template: render.Device}
	EntitySensor     = Entity{Name: "sh_sensor", Param: "sh_id", Template: render.Sensor}
	EntitySensorType = Entity{Name: "sh_sensor_type", Param: "sh_id", Template: render.SensorType}
	EntityDatapoint  = Entity{Name: "sh_datapoint_list", Param: "sh_id", Template: render.Datapoint}
)

// Pattern requires a non-empty key segment, so "/sh_user//" never reaches
// the repository.
func (e Entity) Pattern() string {
	return "/" + e.Name + "/{" + e.Param + ":[^/]+}/"
}

func (e Entity) NotFoundMessage() string {
	return e.Name + " ID error, please check whether the ID in the URL exists..."
}
