package planner

import "sort"

// BodyPart — группа видеотренировок.
type BodyPart struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Video — видеотренировка с уровнем сложности (ง่าย/ปานกลาง/ยาก).
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	YoutubeLink string `json:"youtube_link"`
}

var bodyParts = []BodyPart{
	{ID: "upper-body", Name: "Upper Body"},
	{ID: "core", Name: "Core & Abdominal"},
	{ID: "legs", Name: "Legs"},
	{ID: "stretching", Name: "Stretching"},
}

var videosByBodyPart = map[string][]Video{
	"upper-body": {
		{ID: "1", Title: "MadFit - 15 MIN UPPER BODY WORKOUT (No Equipment)", Duration: "15 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/gC_L9qAHVJ8/hqdefault.jpg", Description: "คลิปนี้เน้นไหล่ แขน และหลังส่วนบนแบบไม่ใช้อุปกรณ์ เหมาะสำหรับผู้เริ่มต้นถึงระดับกลาง", YoutubeLink: "https://www.youtube.com/watch?v=gC_L9qAHVJ8"},
		{ID: "2", Title: "MadFit - 20 MIN UPPER BODY DUMBBELL WORKOUT", Duration: "20 นาที", Level: "ปานกลาง", Thumbnail: "https://i.ytimg.com/vi/U0bhE67HuDY/hqdefault.jpg", Description: "เวิร์กเอาต์กล้ามเนื้อช่วงบนด้วยดัมเบลที่ทำตามง่ายและค่อยๆ เพิ่มความท้าทายได้", YoutubeLink: "https://www.youtube.com/watch?v=U0bhE67HuDY"},
		{ID: "3", Title: "FitnessBlender - Beginner Upper Body Workout", Duration: "16 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/X3-gKPNyrTA/hqdefault.jpg", Description: "โปรแกรมฝึกช่วงบนแบบพื้นฐาน จังหวะชัดเจนและปลอดภัยสำหรับคนเริ่มต้น", YoutubeLink: "https://www.youtube.com/watch?v=X3-gKPNyrTA"},
		{ID: "10", Title: "Growingannanas - 15 MIN UPPER BODY WORKOUT", Duration: "15 นาที", Level: "ยาก", Thumbnail: "https://i.ytimg.com/vi/UoC_O3HzsH0/hqdefault.jpg", Description: "เวิร์กเอาต์ช่วงบนความเข้มสูง เน้นแขน ไหล่ หลัง และความทนทานของกล้ามเนื้อ", YoutubeLink: "https://www.youtube.com/watch?v=UoC_O3HzsH0"},
	},
	"core": {
		{ID: "11", Title: "Chloe Ting - Get Abs in 2 Weeks (Abs Workout)", Duration: "10 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/2pLT-olgUJs/hqdefault.jpg", Description: "คลิปหน้าท้องยอดนิยมที่เน้นแกนกลางลำตัวและทำตามได้ที่บ้านโดยไม่ใช้อุปกรณ์", YoutubeLink: "https://www.youtube.com/watch?v=2pLT-olgUJs"},
		{ID: "12", Title: "Pamela Reif - 10 MIN AB WORKOUT", Duration: "10 นาที", Level: "ปานกลาง", Thumbnail: "https://i.ytimg.com/vi/AnYl6Nk9GOA/hqdefault.jpg", Description: "เวิร์กเอาต์หน้าท้อง 10 นาทีแบบต่อเนื่อง เหมาะกับผู้เริ่มต้นที่อยากเพิ่มความฟิตแกนกลาง", YoutubeLink: "https://www.youtube.com/watch?v=AnYl6Nk9GOA"},
		{ID: "19", Title: "Growingannanas - 15 MIN INTENSE ABS WORKOUT", Duration: "15 นาที", Level: "ยาก", Thumbnail: "https://i.ytimg.com/vi/3p8EBPVZ2Iw/hqdefault.jpg", Description: "หน้าท้องระดับเข้มข้น เน้นความทนทานของแกนกลางและการคุมลำตัวต่อเนื่อง", YoutubeLink: "https://www.youtube.com/watch?v=3p8EBPVZ2Iw"},
	},
	"legs": {
		{ID: "21", Title: "Chloe Ting - Slim Thigh Workout", Duration: "20 นาที", Level: "ยาก", Thumbnail: "https://i.ytimg.com/vi/oAPCPjnU1wA/hqdefault.jpg", Description: "เวิร์กเอาต์ขาและต้นขาที่ทำได้ในพื้นที่จำกัด เหมาะกับผู้เริ่มต้นถึงกลาง", YoutubeLink: "https://www.youtube.com/watch?v=oAPCPjnU1wA"},
		{ID: "22", Title: "10 MIN LEG/BOOTY/THIGH WORKOUT (No Equipment Killer Legs)", Duration: "12 นาที", Level: "ปานกลาง", Thumbnail: "https://i.ytimg.com/vi/FJA3R7n_594/hqdefault.jpg", Description: "คลิปโฟกัสกล้ามขาโดยไม่ใช้อุปกรณ์ เหมาะสำหรับฝึกความแข็งแรงพื้นฐาน", YoutubeLink: "https://www.youtube.com/watch?v=FJA3R7n_594"},
		{ID: "24", Title: "FitnessBlender - Lower Body Workout for Beginners", Duration: "20 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/1f8yoFFdkcY/hqdefault.jpg", Description: "คลิปฝึกขาและสะโพกที่คุมจังหวะได้ง่าย ลดแรงกระแทกและเหมาะกับมือใหม่", YoutubeLink: "https://www.youtube.com/watch?v=1f8yoFFdkcY"},
	},
	"stretching": {
		{ID: "32", Title: "Yoga With Adriene - Yoga For Complete Beginners", Duration: "20 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/v7AYKMP6rOE/hqdefault.jpg", Description: "โยคะยืดเหยียดพื้นฐานทั้งตัวที่นุ่มนวล เหมาะมากสำหรับเริ่มต้นและวันพักฟื้น", YoutubeLink: "https://www.youtube.com/watch?v=v7AYKMP6rOE"},
		{ID: "34", Title: "Yoga With Adriene - Yoga for Back Pain", Duration: "17 นาที", Level: "ปานกลาง", Thumbnail: "https://i.ytimg.com/vi/Ho9em79_0qg/hqdefault.jpg", Description: "ท่ายืดเน้นหลังและสะโพก ช่วยคลายความตึงจากการนั่งนานและฟื้นฟูการเคลื่อนไหว", YoutubeLink: "https://www.youtube.com/watch?v=Ho9em79_0qg"},
		{ID: "36", Title: "Boho Beautiful - 10 MIN FULL BODY STRETCH", Duration: "10 นาที", Level: "ง่าย", Thumbnail: "https://i.ytimg.com/vi/2L2lnxIcNmo/hqdefault.jpg", Description: "ยืดเหยียดทั้งตัวแบบนุ่มนวล ช่วยคลายตึงและเพิ่มความยืดหยุ่นของร่างกาย", YoutubeLink: "https://www.youtube.com/watch?v=2L2lnxIcNmo"},
	},
}

var levelOrder = map[string]int{"ง่าย": 0, "ปานกลาง": 1, "ยาก": 2}

// BodyParts возвращает доступные группы видео.
func BodyParts() []BodyPart {
	out := make([]BodyPart, len(bodyParts))
	copy(out, bodyParts)
	return out
}

// VideosForPart возвращает видео группы, отсортированные от простых к сложным.
// Неизвестная группа дает пустой список, не ошибку.
func VideosForPart(partID string) []Video {
	videos := videosByBodyPart[partID]
	out := make([]Video, len(videos))
	copy(out, videos)

	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := levelOrder[out[i].Level]
		if !ok {
			ri = 99
		}
		rj, ok := levelOrder[out[j].Level]
		if !ok {
			rj = 99
		}
		return ri < rj
	})

	return out
}
