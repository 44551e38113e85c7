/**
 * 目录:内置模块预设
 * @author: sun977
 * @date: 2025.09.16
 * @description: 命名的静态模块组合，应用预设时整体替换选择状态，加载时校验引用
 * @func: builtinPresets
 */
package catalog

import "neoconsole/internal/model"

// builtinPresets 返回内置预设集
// 预设是allow-list：未列出的模块应用后一律为禁用
func builtinPresets() []model.ModulePreset {
	return []model.ModulePreset{
		{
			Name:        "Quick Security Assessment",
			Description: "Fast baseline coverage for a single target",
			ModuleKeys: []string{
				"host_discovery",
				"network_scan",
				"web_application_scan",
				"vulnerability_check",
			},
		},
		{
			Name:        "Full Enterprise Assessment",
			Description: "Broad coverage across network, web, credentials and cloud surfaces",
			ModuleKeys: []string{
				"host_discovery",
				"network_scan",
				"service_fingerprint",
				"firewall_detection",
				"snmp_enumeration",
				"web_application_scan",
				"web_crawler",
				"directory_bruteforce",
				"sql_injection_test",
				"xss_detection",
				"tls_configuration_audit",
				"vulnerability_check",
				"cve_correlation",
				"weak_password_audit",
				"default_credential_check",
				"subdomain_enumeration",
				"dns_reconnaissance",
				"certificate_transparency",
				"smb_share_audit",
				"cloud_configuration_audit",
				"iam_policy_review",
				"storage_exposure_check",
			},
		},
		{
			Name:        "Advanced Red Team Exercise",
			Description: "Deep attack-path oriented testing including identity and exploitation",
			ModuleKeys: []string{
				"masscan_sweep",
				"network_scan",
				"service_fingerprint",
				"subdomain_enumeration",
				"dns_reconnaissance",
				"search_engine_dorking",
				"email_harvesting",
				"web_application_scan",
				"api_scan",
				"sql_injection_test",
				"vulnerability_check",
				"poc_verification",
				"credential_bruteforce",
				"weak_password_audit",
				"active_directory_enumeration",
				"kerberos_attack_surface",
				"smb_share_audit",
				"secret_detection",
			},
		},
	}
}
