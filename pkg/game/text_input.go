package game

// TextInput 外部提供的文本输入框
// 只在提交时读取值，接受提交后由控制器清空
type TextInput interface {
	Value() string
	SetValue(s string)
}
