package templates

import "github.com/jonathan/infofill/internal/types"

// Defaults returns the built-in templates a fresh library starts with.
func Defaults() []types.Template {
	return []types.Template{
		{
			ID:   "default-3",
			Name: "学习工作简历 (表格格式)",
			Type: types.TemplateTable,
			Content: "开始时间\t结束时间\t毕业院校及所学专业（工作单位及职务）\n" +
				"{{#experiences}}\n" +
				"{{startDate}}\t{{endDate}}\t{{name}} {{role}} {{title}} {{description}}\n" +
				"{{/experiences}}",
			Mapping: map[string]string{},
		},
		{
			ID:   "default-1",
			Name: "简单的自我介绍",
			Type: types.TemplateText,
			Content: `姓名：{{basic.name}}
性别：{{basic.gender}}
出生日期：{{basic.birthDate}}
联系电话：{{basic.phone}}
邮箱：{{basic.email}}
通讯地址：{{basic.address}}

【教育/工作经历】
{{#experiences}}
{{startDate}} - {{endDate}}  {{name}}  {{role}}  {{title}}
{{description}}
{{/experiences}}`,
			Mapping: map[string]string{},
		},
		{
			ID:   "default-2",
			Name: "标准 JSON 格式",
			Type: types.TemplateJSON,
			Content: `{
  "personalInfo": {
    "name": "{{basic.name}}",
    "gender": "{{basic.gender}}",
    "idCard": "{{basic.idNumber}}",
    "contact": {
      "phone": "{{basic.phone}}",
      "email": "{{basic.email}}",
      "address": "{{basic.address}}"
    }
  },
  "experiences": [
    {{#experiences}}
    {
      "type": "{{type}}",
      "name": "{{name}}",
      "role": "{{role}}",
      "title": "{{title}}",
      "period": "{{startDate}} to {{endDate}}",
      "details": "{{description}}"
    }{{^last}},{{/last}}
    {{/experiences}}
  ]
}`,
			Mapping: map[string]string{},
		},
	}
}
