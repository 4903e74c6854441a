package quotes

// Quote is one entry of a quote pool.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// DefaultPool is the built-in quote pool. Reordering or resizing it changes which
// quote every past date maps to.
var DefaultPool = []Quote{
	{Content: "每一个不曾起舞的日子，都是对生命的辜负。", Author: "尼采"},
	{Content: "世界以痛吻我，要我报之以歌。", Author: "泰戈尔"},
	{Content: "当你凝视深渊时，深渊也在凝视着你。", Author: "尼采"},
	{Content: "生活不是等待暴风雨过去，而是要学会在雨中跳舞。", Author: "佚名"},
	{Content: "人生如茶，不会苦一辈子，但总会苦一阵子。", Author: "佚名"},
	{Content: "你现在的气质里，藏着你走过的路、读过的书和爱过的人。", Author: "佚名"},
	{Content: "不要为已消逝之年华叹息，必须正视匆匆溜走的时光。", Author: "布莱希特"},
	{Content: "所有的大人都曾经是小孩，虽然只有少数的人记得。", Author: "小王子"},
	{Content: "黑夜给了我黑色的眼睛，我却用它寻找光明。", Author: "顾城"},
	{Content: "在最深的绝望里，遇见最美丽的风景。", Author: "几米"},
	{Content: "你的善良必须有点锋芒，不然就等于零。", Author: "佚名"},
	{Content: "愿你历尽千帆，归来仍是少年。", Author: "佚名"},
	{Content: "山川是不卷收的文章，日月为你掌灯伴读。", Author: "简媜"},
	{Content: "凡是过往，皆为序章。", Author: "莎士比亚"},
	{Content: "生活总是让我们遍体鳞伤，但到后来，那些受伤的地方一定会变成我们最强壮的地方。", Author: "海明威"},
	{Content: "要么庸俗，要么孤独。", Author: "叔本华"},
	{Content: "心有多大，舞台就有多大。", Author: "佚名"},
	{Content: "人间不值得，但你值得。", Author: "佚名"},
	{Content: "慢慢来，谁还没有一个努力的过程。", Author: "佚名"},
	{Content: "星光不问赶路人，时光不负有心人。", Author: "佚名"},
}
